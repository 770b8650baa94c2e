package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"bayesgrid/domain/posterior"
	"bayesgrid/internal/errors"
)

// CSVWriter renders plot series as long-format CSV: one row per point with
// the series label in the first column, ready for faceting in any charting
// tool.
type CSVWriter struct{}

// NewCSVWriter creates a CSV series writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteSeries writes all series to w.
func (c *CSVWriter) WriteSeries(w io.Writer, series []posterior.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "p", "density"}); err != nil {
		return errors.ExportFailed("csv header write failed", err)
	}
	for _, s := range series {
		for _, pt := range s.Points {
			row := []string{
				s.Label,
				strconv.FormatFloat(pt.P, 'g', -1, 64),
				strconv.FormatFloat(pt.Density, 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return errors.ExportFailed("csv row write failed", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.ExportFailed("csv flush failed", err)
	}
	return nil
}
