package bernoulli

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// The binomial likelihood with a flat prior on [0,1] has the conjugate
// posterior Beta(successes+1, failures+1). These helpers expose that
// closed-form reference, which the grid estimator should converge to as
// resolution increases.

// ConjugatePosterior returns the exact Beta posterior under a uniform prior.
func (o Observation) ConjugatePosterior() distuv.Beta {
	return distuv.Beta{
		Alpha: float64(o.Successes) + 1,
		Beta:  float64(o.Failures()) + 1,
	}
}

// ConjugateMean returns the exact posterior mean (successes+1)/(trials+2).
func (o Observation) ConjugateMean() float64 {
	return o.ConjugatePosterior().Mean()
}

// ConjugateDensity evaluates the exact posterior density at p.
func (o Observation) ConjugateDensity(p float64) float64 {
	if p < 0 || p > 1 {
		return 0
	}
	return o.ConjugatePosterior().Prob(p)
}
