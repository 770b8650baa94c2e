package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/core"
	"bayesgrid/domain/posterior"
	"bayesgrid/domain/prior"
	"bayesgrid/ports"
)

// SweepService estimates the same observation across a cross product of grid
// resolutions and priors. Cells are independent pure computations, so they
// run concurrently; results land in a fixed order regardless of scheduling.
type SweepService struct {
	estimator ports.GridEstimatorPort
}

// SweepRequest defines the resolutions and priors to cross
type SweepRequest struct {
	Observation bernoulli.Observation
	Resolutions []int
	Priors      []prior.Prior
	SweepID     core.RunID // optional, generated if empty
}

// SweepCell is one (resolution, prior) estimation within a sweep
type SweepCell struct {
	GridPoints int             `json:"grid_points"`
	Prior      prior.Prior     `json:"prior"`
	Table      posterior.Table `json:"table"`
	Mean       float64         `json:"mean"`
	Mode       float64         `json:"mode"`

	// MeanError is the absolute gap between the grid mean and the exact
	// conjugate Beta mean. It is a convergence diagnostic for the flat
	// prior, where the closed form applies; other priors report NaN.
	MeanError float64 `json:"mean_error"`
}

// SweepResult contains every cell of the sweep plus the analytic reference
type SweepResult struct {
	SweepID       core.RunID            `json:"sweep_id"`
	Observation   bernoulli.Observation `json:"observation"`
	ConjugateMean float64               `json:"conjugate_mean"`
	Cells         []SweepCell           `json:"cells"`
	RuntimeMs     int64                 `json:"runtime_ms"`
}

// NewSweepService creates a sweep service
func NewSweepService(estimator ports.GridEstimatorPort) *SweepService {
	return &SweepService{estimator: estimator}
}

// Run executes every (resolution, prior) combination concurrently.
func (s *SweepService) Run(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	startTime := time.Now()

	if len(req.Resolutions) == 0 {
		return nil, core.NewInvalidParameterError("resolutions", "must not be empty")
	}
	if len(req.Priors) == 0 {
		return nil, core.NewInvalidParameterError("priors", "must not be empty")
	}

	sweepID := req.SweepID
	if sweepID == "" {
		sweepID = core.NewRunID()
	}
	exactMean := req.Observation.ConjugateMean()

	cells := make([]SweepCell, len(req.Resolutions)*len(req.Priors))
	g, gctx := errgroup.WithContext(ctx)
	for ri, nPoints := range req.Resolutions {
		for pi, pr := range req.Priors {
			idx := ri*len(req.Priors) + pi
			nPoints, pr := nPoints, pr
			g.Go(func() error {
				table, err := s.estimator.Estimate(gctx, req.Observation, nPoints, pr)
				if err != nil {
					return fmt.Errorf("cell n=%d prior=%s: %w", nPoints, pr, err)
				}
				meanError := math.NaN()
				if pr.Kind == prior.KindUniform {
					meanError = math.Abs(table.Mean() - exactMean)
				}
				cells[idx] = SweepCell{
					GridPoints: nPoints,
					Prior:      pr,
					Table:      table,
					Mean:       table.Mean(),
					Mode:       table.Mode(),
					MeanError:  meanError,
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SweepResult{
		SweepID:       sweepID,
		Observation:   req.Observation,
		ConjugateMean: exactMean,
		Cells:         cells,
		RuntimeMs:     time.Since(startTime).Milliseconds(),
	}, nil
}

// Series renders every cell as a labelled plot series.
func (r *SweepResult) Series() []posterior.Series {
	series := make([]posterior.Series, len(r.Cells))
	for i, cell := range r.Cells {
		label := fmt.Sprintf("n=%d %s", cell.GridPoints, cell.Prior)
		series[i] = posterior.NewSeries(label, cell.Table)
	}
	return series
}
