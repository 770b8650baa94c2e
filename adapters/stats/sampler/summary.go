package sampler

import (
	"github.com/montanaflynn/stats"

	"bayesgrid/domain/core"
)

// Summary describes a set of posterior draws: center, spread, and the bounds
// of a central percentile interval.
type Summary struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Interval float64 `json:"interval"` // probability mass between Lower and Upper
	Count    int     `json:"count"`
}

// Summarize computes sample statistics for posterior draws. Interval is the
// central mass to cover, e.g. 0.89 or 0.95.
func Summarize(samples []float64, interval float64) (Summary, error) {
	if len(samples) < 2 {
		return Summary{}, core.ErrInsufficientSamples
	}
	if interval <= 0 || interval >= 1 {
		return Summary{}, core.NewInvalidParameterError("interval", "must be in (0,1)")
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(samples)
	if err != nil {
		return Summary{}, err
	}
	sd, err := stats.StandardDeviation(samples)
	if err != nil {
		return Summary{}, err
	}

	lowTail := (1 - interval) / 2 * 100
	lower, err := stats.Percentile(samples, lowTail)
	if err != nil {
		return Summary{}, err
	}
	upper, err := stats.Percentile(samples, 100-lowTail)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Mean:     mean,
		Median:   median,
		StdDev:   sd,
		Lower:    lower,
		Upper:    upper,
		Interval: interval,
		Count:    len(samples),
	}, nil
}
