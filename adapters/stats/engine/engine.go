package engine

import (
	"context"
	"fmt"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/core"
	"bayesgrid/domain/posterior"
	"bayesgrid/domain/prior"
)

// GridEstimator computes discrete posterior approximations by evaluating
// prior and likelihood pointwise over an evenly spaced parameter grid and
// normalizing the product. It holds no state; a single instance is safe for
// concurrent use.
type GridEstimator struct{}

// NewGridEstimator creates a grid estimator.
func NewGridEstimator() *GridEstimator {
	return &GridEstimator{}
}

// Estimate runs the grid approximation:
//
//  1. build an nPoints grid over [0,1] inclusive
//  2. evaluate the prior weight at each point
//  3. evaluate the binomial likelihood at each point
//  4. multiply, then normalize so the masses sum to 1
//
// Malformed inputs fail with core.ErrInvalidParameter; inputs are never
// silently clamped. If the unnormalized posterior sums to zero (a step prior
// whose support excludes all likelihood mass), the call fails with
// core.ErrDegeneratePosterior instead of dividing by zero.
func (e *GridEstimator) Estimate(ctx context.Context, obs bernoulli.Observation, nPoints int, pr prior.Prior) (posterior.Table, error) {
	if _, err := bernoulli.NewObservation(obs.Successes, obs.Trials); err != nil {
		return posterior.Table{}, err
	}
	if err := pr.Validate(); err != nil {
		return posterior.Table{}, err
	}
	g, err := posterior.NewGrid(nPoints)
	if err != nil {
		return posterior.Table{}, err
	}

	ps := g.Points()
	weights := make([]float64, len(ps))
	total := 0.0
	for i, p := range ps {
		weights[i] = obs.Likelihood(p) * pr.Weight(p)
		total += weights[i]
	}

	if total == 0 {
		return posterior.Table{}, core.NewDegeneratePosteriorError(
			fmt.Sprintf("observation %s with prior %s", obs, pr))
	}

	for i := range weights {
		weights[i] /= total
	}
	return posterior.NewTable(ps, weights), nil
}
