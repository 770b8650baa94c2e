package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"bayesgrid/domain/posterior"
	"bayesgrid/internal/errors"
)

// ExcelWriter renders plot series as an XLSX workbook with one sheet per
// series, so results open directly in a spreadsheet for charting.
type ExcelWriter struct{}

// NewExcelWriter creates an XLSX series writer.
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

// WriteSeries writes the workbook to w.
func (e *ExcelWriter) WriteSeries(w io.Writer, series []posterior.Series) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range series {
		sheet := sheetName(s.Label, i)
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.ExportFailed(fmt.Sprintf("creating sheet %q failed", sheet), err)
		}
		if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"p", "density"}); err != nil {
			return errors.ExportFailed("writing header row failed", err)
		}
		for row, pt := range s.Points {
			cell, err := excelize.CoordinatesToCellName(1, row+2)
			if err != nil {
				return errors.ExportFailed("cell addressing failed", err)
			}
			if err := f.SetSheetRow(sheet, cell, &[]interface{}{pt.P, pt.Density}); err != nil {
				return errors.ExportFailed("writing data row failed", err)
			}
		}
	}

	// Drop the default sheet so only series sheets remain.
	if len(series) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return errors.ExportFailed("removing default sheet failed", err)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.ExportFailed("workbook write failed", err)
	}
	return nil
}

// sheetName produces a unique sheet title within Excel's 31-character limit,
// replacing characters Excel rejects in sheet names.
func sheetName(label string, idx int) string {
	clean := strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")").Replace(label)
	prefix := fmt.Sprintf("%02d ", idx+1)
	if len(prefix)+len(clean) > 31 {
		clean = clean[:31-len(prefix)]
	}
	return prefix + clean
}
