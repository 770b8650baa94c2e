package bernoulli

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Likelihood evaluates the binomial probability mass of the observation at
// proportion p: C(n,k) * p^k * (1-p)^(n-k).
//
// The endpoints follow the standard pmf convention 0^0 = 1: at p=0 the mass
// is 1 when no successes were observed, at p=1 it is 1 when every trial
// succeeded, and 0 otherwise. Interior points delegate to the log-space
// binomial pmf so the binomial coefficient never overflows.
func (o Observation) Likelihood(p float64) float64 {
	if p < 0 || p > 1 {
		return 0
	}
	if p == 0 {
		if o.Successes == 0 {
			return 1
		}
		return 0
	}
	if p == 1 {
		if o.Successes == o.Trials {
			return 1
		}
		return 0
	}

	dist := distuv.Binomial{N: float64(o.Trials), P: p}
	return dist.Prob(float64(o.Successes))
}
