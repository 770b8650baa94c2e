package laplace

import (
	"context"
	"fmt"
	"math"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/core"
	"bayesgrid/domain/posterior"
)

// Approximator fits a Gaussian to the posterior of a binomial proportion
// under a flat prior: centered at the maximum a posteriori value with
// standard deviation from the curvature of the log-posterior at that point.
//
// For the single-parameter binomial-uniform case both quantities have closed
// forms, so no iterative optimizer is involved:
//
//	mode = k/n
//	sd   = sqrt(mode * (1-mode) / n)
//
// which is the inverse square root of the negative second derivative of the
// log-posterior at the mode.
type Approximator struct{}

// NewApproximator creates a quadratic approximator.
func NewApproximator() *Approximator {
	return &Approximator{}
}

// Approximate returns the Gaussian fit for the observation. Observations
// where every trial succeeded or every trial failed put the mode on the
// domain boundary, where the curvature-based spread collapses to zero; those
// fail with core.ErrDegenerateCurvature rather than returning a zero-width
// or NaN fit.
func (a *Approximator) Approximate(ctx context.Context, obs bernoulli.Observation) (posterior.GaussianFit, error) {
	if _, err := bernoulli.NewObservation(obs.Successes, obs.Trials); err != nil {
		return posterior.GaussianFit{}, err
	}
	if obs.Successes == 0 || obs.Successes == obs.Trials {
		return posterior.GaussianFit{}, fmt.Errorf("%w: mode at boundary for observation %s",
			core.ErrDegenerateCurvature, obs)
	}

	mode := obs.Proportion()
	sd := math.Sqrt(mode * (1 - mode) / float64(obs.Trials))
	return posterior.GaussianFit{Mean: mode, StdDev: sd}, nil
}
