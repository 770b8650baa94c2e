package export

import (
	"encoding/json"
	"io"

	"bayesgrid/domain/posterior"
	"bayesgrid/internal/errors"
)

// JSONWriter renders plot series as an indented JSON array.
type JSONWriter struct{}

// NewJSONWriter creates a JSON series writer.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// WriteSeries writes all series to w.
func (j *JSONWriter) WriteSeries(w io.Writer, series []posterior.Series) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(series); err != nil {
		return errors.ExportFailed("json encode failed", err)
	}
	return nil
}
