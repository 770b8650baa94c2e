package posterior

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianFit is the continuous normal approximation of a posterior,
// produced by the quadratic (Laplace) approximator: centered at the
// posterior mode with spread from the local curvature of the log-posterior.
type GaussianFit struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Density evaluates the approximating normal density at p.
func (f GaussianFit) Density(p float64) float64 {
	dist := distuv.Normal{Mu: f.Mean, Sigma: f.StdDev}
	return dist.Prob(p)
}

// Table discretizes the fit onto a grid and normalizes, yielding a table
// directly comparable (and overlayable) with a grid-approximated posterior.
func (f GaussianFit) Table(g Grid) Table {
	ps := g.Points()
	ws := make([]float64, len(ps))
	total := 0.0
	for i, p := range ps {
		ws[i] = f.Density(p)
		total += ws[i]
	}
	for i := range ws {
		ws[i] /= total
	}
	return NewTable(ps, ws)
}
