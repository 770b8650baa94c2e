package posterior

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"bayesgrid/domain/core"
)

// Point is one (parameter value, posterior mass) pair.
type Point struct {
	P       float64 `json:"p"`
	Density float64 `json:"density"`
}

// Table is a normalized discrete approximation of a posterior distribution:
// one point per grid value, in grid order, with densities summing to 1.
// Tables are freshly allocated per estimate and never mutated in place.
type Table struct {
	Points []Point `json:"points"`
}

// NewTable builds a table from parallel grid values and normalized weights.
func NewTable(ps, densities []float64) Table {
	points := make([]Point, len(ps))
	for i := range ps {
		points[i] = Point{P: ps[i], Density: densities[i]}
	}
	return Table{Points: points}
}

// Len returns the number of table entries.
func (t Table) Len() int {
	return len(t.Points)
}

func (t Table) values() (ps, ws []float64) {
	ps = make([]float64, len(t.Points))
	ws = make([]float64, len(t.Points))
	for i, pt := range t.Points {
		ps[i] = pt.P
		ws[i] = pt.Density
	}
	return ps, ws
}

// Mean returns the posterior mean, the density-weighted average parameter.
func (t Table) Mean() float64 {
	ps, ws := t.values()
	return stat.Mean(ps, ws)
}

// Variance returns the density-weighted second central moment.
func (t Table) Variance() float64 {
	ps, ws := t.values()
	return stat.MomentAbout(2, ps, t.Mean(), ws)
}

// StdDev returns the posterior standard deviation.
func (t Table) StdDev() float64 {
	return math.Sqrt(t.Variance())
}

// Mode returns the grid point carrying the largest posterior mass (the
// discrete MAP estimate). Ties resolve to the lowest parameter value.
func (t Table) Mode() float64 {
	best := 0
	for i, pt := range t.Points {
		if pt.Density > t.Points[best].Density {
			best = i
		}
	}
	return t.Points[best].P
}

// Interval returns the bounds of the central credible interval holding the
// given probability mass, located by walking the cumulative distribution.
// Mass must lie in (0,1].
func (t Table) Interval(mass float64) (lo, hi float64, err error) {
	if mass <= 0 || mass > 1 || math.IsNaN(mass) {
		return 0, 0, core.NewInvalidParameterError("mass", "must be in (0,1]")
	}
	lowTail := (1 - mass) / 2
	highTail := 1 - lowTail

	lo = t.Points[0].P
	hi = t.Points[len(t.Points)-1].P
	cum := 0.0
	seenLow := false
	for _, pt := range t.Points {
		cum += pt.Density
		if !seenLow && cum >= lowTail {
			lo = pt.P
			seenLow = true
		}
		if cum >= highTail {
			hi = pt.P
			break
		}
	}
	return lo, hi, nil
}
