package bernoulli

import (
	"fmt"

	"bayesgrid/domain/core"
)

// Observation summarizes a fixed sequence of binary outcomes as a count of
// successes over a number of independent trials. It is created once at
// configuration time and never mutated.
type Observation struct {
	Successes int `json:"successes"`
	Trials    int `json:"trials"`
}

// NewObservation validates and constructs an observation summary.
func NewObservation(successes, trials int) (Observation, error) {
	if trials <= 0 {
		return Observation{}, core.NewInvalidParameterError("trials", fmt.Sprintf("must be positive, got %d", trials))
	}
	if successes < 0 {
		return Observation{}, core.NewInvalidParameterError("successes", fmt.Sprintf("must be non-negative, got %d", successes))
	}
	if successes > trials {
		return Observation{}, core.NewInvalidParameterError("successes", fmt.Sprintf("%d exceeds trials %d", successes, trials))
	}
	return Observation{Successes: successes, Trials: trials}, nil
}

// SummarizeOutcomes derives an observation summary from a raw sequence of
// binary outcomes (true = success).
func SummarizeOutcomes(outcomes []bool) (Observation, error) {
	if len(outcomes) == 0 {
		return Observation{}, core.ErrEmptyOutcomes
	}
	successes := 0
	for _, hit := range outcomes {
		if hit {
			successes++
		}
	}
	return Observation{Successes: successes, Trials: len(outcomes)}, nil
}

// Failures returns the number of unsuccessful trials.
func (o Observation) Failures() int {
	return o.Trials - o.Successes
}

// Proportion returns the raw sample proportion of successes.
func (o Observation) Proportion() float64 {
	return float64(o.Successes) / float64(o.Trials)
}

func (o Observation) String() string {
	return fmt.Sprintf("%d/%d", o.Successes, o.Trials)
}
