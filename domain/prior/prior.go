package prior

import (
	"fmt"
	"math"

	"bayesgrid/domain/core"
)

// Kind identifies a prior variant. The set is closed so evaluation can be
// handled exhaustively instead of injecting arbitrary functions.
type Kind string

const (
	KindUniform           Kind = "uniform"
	KindStep              Kind = "step"
	KindDoubleExponential Kind = "double_exponential"
)

// Prior is a pure weighting over the parameter domain [0,1]. The zero value
// is not valid; use one of the constructors.
type Prior struct {
	Kind Kind `json:"kind"`

	// Threshold applies to Step priors: weight is 0 below it, 1 at and above.
	Threshold float64 `json:"threshold,omitempty"`

	// Rate and Center apply to DoubleExponential priors:
	// weight = exp(-Rate * |p - Center|).
	Rate   float64 `json:"rate,omitempty"`
	Center float64 `json:"center,omitempty"`
}

// NewUniform returns the flat prior: weight 1 everywhere on [0,1].
func NewUniform() Prior {
	return Prior{Kind: KindUniform}
}

// NewStep returns a step prior that zeroes all mass below threshold.
// Threshold must lie within [0,1].
func NewStep(threshold float64) (Prior, error) {
	if threshold < 0 || threshold > 1 || math.IsNaN(threshold) {
		return Prior{}, core.NewInvalidParameterError("threshold", fmt.Sprintf("must be in [0,1], got %v", threshold))
	}
	return Prior{Kind: KindStep, Threshold: threshold}, nil
}

// NewDoubleExponential returns a Laplace-shaped prior peaked at center with
// the given decay rate. Rate must be positive and center within [0,1].
func NewDoubleExponential(rate, center float64) (Prior, error) {
	if rate <= 0 || math.IsNaN(rate) {
		return Prior{}, core.NewInvalidParameterError("rate", fmt.Sprintf("must be positive, got %v", rate))
	}
	if center < 0 || center > 1 || math.IsNaN(center) {
		return Prior{}, core.NewInvalidParameterError("center", fmt.Sprintf("must be in [0,1], got %v", center))
	}
	return Prior{Kind: KindDoubleExponential, Rate: rate, Center: center}, nil
}

// Validate re-checks the invariants of the variant parameters. Useful when a
// Prior arrives deserialized rather than through a constructor.
func (pr Prior) Validate() error {
	switch pr.Kind {
	case KindUniform:
		return nil
	case KindStep:
		_, err := NewStep(pr.Threshold)
		return err
	case KindDoubleExponential:
		_, err := NewDoubleExponential(pr.Rate, pr.Center)
		return err
	default:
		return core.NewInvalidParameterError("prior", fmt.Sprintf("unknown kind %q", pr.Kind))
	}
}

// Weight evaluates the prior at p. Weights are non-negative and need not be
// normalized; the grid estimator normalizes the posterior product.
func (pr Prior) Weight(p float64) float64 {
	switch pr.Kind {
	case KindUniform:
		return 1
	case KindStep:
		if p < pr.Threshold {
			return 0
		}
		return 1
	case KindDoubleExponential:
		return math.Exp(-pr.Rate * math.Abs(p-pr.Center))
	default:
		return 0
	}
}

func (pr Prior) String() string {
	switch pr.Kind {
	case KindUniform:
		return "uniform"
	case KindStep:
		return fmt.Sprintf("step(%g)", pr.Threshold)
	case KindDoubleExponential:
		return fmt.Sprintf("laplace(%g,%g)", pr.Rate, pr.Center)
	default:
		return string(pr.Kind)
	}
}
