package export

import (
	"fmt"

	"bayesgrid/internal/errors"
	"bayesgrid/ports"
)

// ForFormat returns the writer for a format name: "csv", "json", or "xlsx".
func ForFormat(format string) (ports.SeriesWriterPort, error) {
	switch format {
	case "csv":
		return NewCSVWriter(), nil
	case "json":
		return NewJSONWriter(), nil
	case "xlsx":
		return NewExcelWriter(), nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown export format %q (want csv, json, or xlsx)", format))
	}
}
