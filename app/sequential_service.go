package app

import (
	"context"
	"fmt"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/core"
	"bayesgrid/domain/posterior"
	"bayesgrid/domain/prior"
	"bayesgrid/ports"
)

// SequentialService replays a toss record one outcome at a time, emitting the
// posterior after each observation so callers can chart how the distribution
// tightens as data arrive.
type SequentialService struct {
	estimator ports.GridEstimatorPort
}

// SequentialStep is the posterior state after folding in one more outcome
type SequentialStep struct {
	Outcome     bool                  `json:"outcome"`
	Observation bernoulli.Observation `json:"observation"`
	Table       posterior.Table       `json:"table"`
	Mean        float64               `json:"mean"`
}

// NewSequentialService creates a sequential updating service
func NewSequentialService(estimator ports.GridEstimatorPort) *SequentialService {
	return &SequentialService{estimator: estimator}
}

// Run estimates the posterior after each prefix of the outcome sequence.
// Each step recomputes from the full prefix, so every intermediate table
// carries the same normalization guarantee as a standalone estimate.
func (s *SequentialService) Run(ctx context.Context, outcomes []bool, gridPoints int, pr prior.Prior) ([]SequentialStep, error) {
	if len(outcomes) == 0 {
		return nil, core.ErrEmptyOutcomes
	}

	steps := make([]SequentialStep, 0, len(outcomes))
	for i := range outcomes {
		obs, err := bernoulli.SummarizeOutcomes(outcomes[:i+1])
		if err != nil {
			return nil, err
		}
		table, err := s.estimator.Estimate(ctx, obs, gridPoints, pr)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, SequentialStep{
			Outcome:     outcomes[i],
			Observation: obs,
			Table:       table,
			Mean:        table.Mean(),
		})
	}
	return steps, nil
}

// StepSeries renders each step as a labelled plot series for faceted charts.
func StepSeries(steps []SequentialStep) []posterior.Series {
	series := make([]posterior.Series, len(steps))
	for i, step := range steps {
		series[i] = posterior.NewSeries(fmt.Sprintf("n=%d %s", step.Observation.Trials, step.Observation), step.Table)
	}
	return series
}
