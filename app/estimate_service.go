package app

import (
	"context"
	"time"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/core"
	"bayesgrid/domain/posterior"
	"bayesgrid/domain/prior"
	"bayesgrid/ports"
)

// EstimateService runs single grid-posterior estimations and packages the
// result with summary statistics for callers (CLI, HTTP, export).
type EstimateService struct {
	estimator ports.GridEstimatorPort
}

// EstimateRequest defines the inputs for one grid estimation
type EstimateRequest struct {
	Observation bernoulli.Observation
	GridPoints  int
	Prior       prior.Prior
	RunID       core.RunID // optional, generated if empty
}

// EstimateResult contains the posterior table plus derived summaries
type EstimateResult struct {
	RunID       core.RunID            `json:"run_id"`
	Observation bernoulli.Observation `json:"observation"`
	GridPoints  int                   `json:"grid_points"`
	Prior       prior.Prior           `json:"prior"`
	Table       posterior.Table       `json:"table"`
	Mean        float64               `json:"mean"`
	Mode        float64               `json:"mode"`
	StdDev      float64               `json:"std_dev"`
	RuntimeMs   int64                 `json:"runtime_ms"`
}

// NewEstimateService creates an estimate service
func NewEstimateService(estimator ports.GridEstimatorPort) *EstimateService {
	return &EstimateService{estimator: estimator}
}

// Run executes one estimation and derives posterior summaries.
func (s *EstimateService) Run(ctx context.Context, req EstimateRequest) (*EstimateResult, error) {
	startTime := time.Now()

	runID := req.RunID
	if runID == "" {
		runID = core.NewRunID()
	}

	table, err := s.estimator.Estimate(ctx, req.Observation, req.GridPoints, req.Prior)
	if err != nil {
		return nil, err
	}

	return &EstimateResult{
		RunID:       runID,
		Observation: req.Observation,
		GridPoints:  req.GridPoints,
		Prior:       req.Prior,
		Table:       table,
		Mean:        table.Mean(),
		Mode:        table.Mode(),
		StdDev:      table.StdDev(),
		RuntimeMs:   time.Since(startTime).Milliseconds(),
	}, nil
}

// Series renders the result as a labelled plot series.
func (r *EstimateResult) Series() posterior.Series {
	return posterior.NewSeries(r.Prior.String(), r.Table)
}
