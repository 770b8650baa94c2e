package sampler

import (
	"context"
	"fmt"

	"bayesgrid/domain/core"
	"bayesgrid/domain/posterior"
	"bayesgrid/ports"
)

// Sampler draws parameter values from a discrete posterior table by
// inverse-CDF lookup, using a seeded stream so draws replay exactly for a
// given seed.
type Sampler struct {
	rng ports.RNGPort
}

// NewSampler creates a sampler backed by the given RNG provider.
func NewSampler(rng ports.RNGPort) *Sampler {
	return &Sampler{rng: rng}
}

// Draw returns count samples from the table's distribution.
func (s *Sampler) Draw(ctx context.Context, table posterior.Table, count int, seed int64) ([]float64, error) {
	if count <= 0 {
		return nil, core.NewInvalidParameterError("count", fmt.Sprintf("must be positive, got %d", count))
	}
	if table.Len() == 0 {
		return nil, core.NewInvalidParameterError("table", "is empty")
	}

	stream, err := s.rng.SeededStream(ctx, "posterior_draw", seed)
	if err != nil {
		return nil, err
	}

	// Cumulative distribution over the table, in grid order.
	cum := make([]float64, table.Len())
	running := 0.0
	for i, pt := range table.Points {
		running += pt.Density
		cum[i] = running
	}
	// Guard the final bucket against float drift below 1.
	cum[len(cum)-1] = 1

	samples := make([]float64, count)
	for i := range samples {
		u := stream.Float64()
		samples[i] = table.Points[searchCum(cum, u)].P
	}
	return samples, nil
}

// searchCum returns the first index whose cumulative mass reaches u.
func searchCum(cum []float64, u float64) int {
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] < u {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
