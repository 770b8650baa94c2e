package posterior

import (
	"fmt"

	"bayesgrid/domain/core"
)

// Grid is an ordered sequence of evenly spaced parameter values covering
// [0,1] inclusive of both endpoints. Invariants: strictly increasing,
// first point 0, last point 1, spacing 1/(n-1).
type Grid struct {
	points []float64
}

// NewGrid constructs a grid with nPoints values. nPoints must be at least 2.
func NewGrid(nPoints int) (Grid, error) {
	if nPoints < 2 {
		return Grid{}, core.NewInvalidParameterError("n_points", fmt.Sprintf("must be >= 2, got %d", nPoints))
	}
	points := make([]float64, nPoints)
	step := 1.0 / float64(nPoints-1)
	for i := range points {
		points[i] = float64(i) * step
	}
	// Pin the endpoint exactly; accumulated float steps can land a hair off 1.
	points[nPoints-1] = 1
	return Grid{points: points}, nil
}

// Len returns the number of grid points.
func (g Grid) Len() int {
	return len(g.points)
}

// At returns the i-th grid point.
func (g Grid) At(i int) float64 {
	return g.points[i]
}

// Spacing returns the distance between adjacent points.
func (g Grid) Spacing() float64 {
	return 1.0 / float64(len(g.points)-1)
}

// Points returns a copy of the grid values.
func (g Grid) Points() []float64 {
	out := make([]float64, len(g.points))
	copy(out, g.points)
	return out
}
