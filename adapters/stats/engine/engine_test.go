package engine

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/core"
	"bayesgrid/domain/posterior"
	"bayesgrid/domain/prior"
	"bayesgrid/internal/testkit"
)

func globeObs(t *testing.T) bernoulli.Observation {
	t.Helper()
	return testkit.NewTestKit().GlobeObservation()
}

func TestEstimate_Normalization(t *testing.T) {
	estimator := NewGridEstimator()
	obs := globeObs(t)

	for _, n := range []int{3, 20, 100, 1000} {
		table, err := estimator.Estimate(context.Background(), obs, n, prior.NewUniform())
		require.NoError(t, err)
		require.Equal(t, n, table.Len())

		sum := 0.0
		for _, pt := range table.Points {
			assert.GreaterOrEqual(t, pt.Density, 0.0)
			assert.False(t, math.IsNaN(pt.Density))
			sum += pt.Density
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "densities must sum to 1 for n=%d", n)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	estimator := NewGridEstimator()
	obs := globeObs(t)

	first, err := estimator.Estimate(context.Background(), obs, 100, prior.NewUniform())
	require.NoError(t, err)
	second, err := estimator.Estimate(context.Background(), obs, 100, prior.NewUniform())
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i := range first.Points {
		// Identical inputs walk an identical code path: bit-identical output.
		assert.Equal(t, first.Points[i], second.Points[i])
	}
}

func TestEstimate_MAPNearSampleProportion(t *testing.T) {
	// Under a flat prior the posterior peaks at the MAP 6/9; the discrete
	// mode must land on the grid point nearest it.
	estimator := NewGridEstimator()
	obs := globeObs(t)

	table, err := estimator.Estimate(context.Background(), obs, 20, prior.NewUniform())
	require.NoError(t, err)

	spacing := 1.0 / 19.0
	assert.InDelta(t, 6.0/9.0, table.Mode(), spacing)
}

func TestEstimate_ConvergesToConjugateMean(t *testing.T) {
	estimator := NewGridEstimator()
	obs := globeObs(t)
	exact := obs.ConjugateMean()

	var prevErr float64 = math.Inf(1)
	for _, n := range []int{20, 100, 1000} {
		table, err := estimator.Estimate(context.Background(), obs, n, prior.NewUniform())
		require.NoError(t, err)

		gap := math.Abs(table.Mean() - exact)
		assert.Less(t, gap, prevErr, "error must shrink as resolution grows (n=%d)", n)
		prevErr = gap
	}
	assert.Less(t, prevErr, 1e-4, "fine grid should be very close to the Beta mean")
}

func TestEstimate_DegeneratePosterior(t *testing.T) {
	// Grid {0, 1} with Step(0.5): the prior zeroes p=0 and the likelihood
	// of 6/9 zeroes p=1, so every unnormalized weight is zero.
	estimator := NewGridEstimator()
	obs := globeObs(t)

	step, err := prior.NewStep(0.5)
	require.NoError(t, err)

	_, err = estimator.Estimate(context.Background(), obs, 2, step)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDegeneratePosterior)
}

func TestEstimate_StepPriorZeroesBelowThreshold(t *testing.T) {
	estimator := NewGridEstimator()
	obs := globeObs(t)

	step, err := prior.NewStep(0.5)
	require.NoError(t, err)

	table, err := estimator.Estimate(context.Background(), obs, 21, step)
	require.NoError(t, err)

	for _, pt := range table.Points {
		if pt.P < 0.5 {
			assert.Zero(t, pt.Density, "mass below threshold at p=%v", pt.P)
		}
	}
	assert.InDelta(t, 1.0, sumDensities(table.Points), 1e-9)
}

func TestEstimate_InvalidInputs(t *testing.T) {
	estimator := NewGridEstimator()
	obs := globeObs(t)

	t.Run("grid too small", func(t *testing.T) {
		_, err := estimator.Estimate(context.Background(), obs, 1, prior.NewUniform())
		assert.ErrorIs(t, err, core.ErrInvalidParameter)
	})

	t.Run("successes exceed trials", func(t *testing.T) {
		bad := bernoulli.Observation{Successes: 12, Trials: 9}
		_, err := estimator.Estimate(context.Background(), bad, 20, prior.NewUniform())
		assert.ErrorIs(t, err, core.ErrInvalidParameter)
	})

	t.Run("malformed prior", func(t *testing.T) {
		bad := prior.Prior{Kind: prior.KindStep, Threshold: 2}
		_, err := estimator.Estimate(context.Background(), obs, 20, bad)
		assert.ErrorIs(t, err, core.ErrInvalidParameter)
	})
}

func TestEstimate_DoubleExponentialNeverDegenerate(t *testing.T) {
	estimator := NewGridEstimator()
	obs := globeObs(t)

	laplacePrior, err := prior.NewDoubleExponential(10, 0.2)
	require.NoError(t, err)

	table, err := estimator.Estimate(context.Background(), obs, 50, laplacePrior)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sumDensities(table.Points), 1e-9)

	// The peaked prior at 0.2 should drag the posterior mean below the
	// flat-prior mean.
	flat, err := estimator.Estimate(context.Background(), obs, 50, prior.NewUniform())
	require.NoError(t, err)
	assert.Less(t, table.Mean(), flat.Mean())
}

func sumDensities(points []posterior.Point) float64 {
	sum := 0.0
	for _, pt := range points {
		sum += pt.Density
	}
	return sum
}
