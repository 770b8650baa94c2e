package posterior

// Series is the plot-boundary view of a distribution: a labelled, ordered
// sequence of (x, y) pairs handed to whatever charting layer renders it.
// The core carries no dependency on the rendering format.
type Series struct {
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// NewSeries wraps a table as a labelled plot series.
func NewSeries(label string, t Table) Series {
	return Series{Label: label, Points: t.Points}
}
