package ports

import (
	"context"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/posterior"
	"bayesgrid/domain/prior"
)

// GridEstimatorPort produces a normalized discrete posterior approximation
// for a binomial observation on a grid of the given resolution.
type GridEstimatorPort interface {
	Estimate(ctx context.Context, obs bernoulli.Observation, nPoints int, pr prior.Prior) (posterior.Table, error)
}

// LaplacePort produces the quadratic (Gaussian) approximation of the
// posterior for a binomial observation under a flat prior.
type LaplacePort interface {
	Approximate(ctx context.Context, obs bernoulli.Observation) (posterior.GaussianFit, error)
}

// SamplerPort draws parameter samples from a discrete posterior table.
// Draws are deterministic for a given seed.
type SamplerPort interface {
	Draw(ctx context.Context, table posterior.Table, count int, seed int64) ([]float64, error)
}
