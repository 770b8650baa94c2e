package ports

import (
	"io"

	"bayesgrid/domain/posterior"
)

// SeriesWriterPort renders plot series for an external charting consumer.
// Implementations choose the encoding (CSV, JSON, XLSX); the core stays
// format-agnostic.
type SeriesWriterPort interface {
	WriteSeries(w io.Writer, series []posterior.Series) error
}
