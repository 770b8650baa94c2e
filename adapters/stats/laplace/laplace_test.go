package laplace

import (
	"context"
	"math"
	"testing"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/core"
)

func TestApproximate_ClosedForm(t *testing.T) {
	// For 6 successes in 9 trials under a flat prior:
	// mode = 6/9, sd = sqrt((6/9)(3/9)/9) ≈ 0.1571
	obs := bernoulli.Observation{Successes: 6, Trials: 9}

	fit, err := NewApproximator().Approximate(context.Background(), obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(fit.Mean-6.0/9.0) > 1e-12 {
		t.Errorf("mean: expected %v, got %v", 6.0/9.0, fit.Mean)
	}
	wantSD := math.Sqrt((6.0 / 9.0) * (3.0 / 9.0) / 9.0)
	if math.Abs(fit.StdDev-wantSD) > 1e-12 {
		t.Errorf("sd: expected %v, got %v", wantSD, fit.StdDev)
	}
	// Rounded, the fit is roughly Normal(0.67, 0.16).
	if math.Abs(fit.Mean-0.67) > 0.01 || math.Abs(fit.StdDev-0.16) > 0.01 {
		t.Errorf("fit (%.4f, %.4f) strayed from the expected (0.67, 0.16) neighborhood", fit.Mean, fit.StdDev)
	}
}

func TestApproximate_BoundaryModesDegenerate(t *testing.T) {
	cases := []bernoulli.Observation{
		{Successes: 0, Trials: 5},
		{Successes: 5, Trials: 5},
	}
	for _, obs := range cases {
		_, err := NewApproximator().Approximate(context.Background(), obs)
		if err == nil {
			t.Errorf("observation %s: expected degenerate curvature error", obs)
			continue
		}
		if !core.IsDegenerate(err) {
			t.Errorf("observation %s: expected degeneracy, got %v", obs, err)
		}
	}
}

func TestApproximate_InvalidObservation(t *testing.T) {
	bad := bernoulli.Observation{Successes: 10, Trials: 9}
	if _, err := NewApproximator().Approximate(context.Background(), bad); !core.IsInvalidParameter(err) {
		t.Errorf("expected invalid parameter error, got %v", err)
	}
}

func TestGaussianDensity_PeaksAtMean(t *testing.T) {
	obs := bernoulli.Observation{Successes: 6, Trials: 9}
	fit, err := NewApproximator().Approximate(context.Background(), obs)
	if err != nil {
		t.Fatal(err)
	}

	atMean := fit.Density(fit.Mean)
	for _, p := range []float64{0.3, 0.5, 0.9} {
		if fit.Density(p) >= atMean {
			t.Errorf("density at %v should be below the peak", p)
		}
	}
}
