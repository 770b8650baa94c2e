package sampler

import (
	"context"
	"math"
	"testing"

	"bayesgrid/domain/core"
	"bayesgrid/domain/posterior"
)

func testTable(t *testing.T) posterior.Table {
	t.Helper()
	// A simple peaked distribution over five points.
	return posterior.NewTable(
		[]float64{0, 0.25, 0.5, 0.75, 1},
		[]float64{0.05, 0.2, 0.5, 0.2, 0.05},
	)
}

func TestDraw_DeterministicForSeed(t *testing.T) {
	s := NewSampler(NewSeededRNG())
	table := testTable(t)

	first, err := s.Draw(context.Background(), table, 1000, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Draw(context.Background(), table, 1000, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs for identical seed: %v vs %v", i, first[i], second[i])
		}
	}

	other, err := s.Draw(context.Background(), table, 1000, 43)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	same := true
	for i := range first {
		if first[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical draws")
	}
}

func TestDraw_SampleMeanTracksTableMean(t *testing.T) {
	s := NewSampler(NewSeededRNG())
	table := testTable(t)

	samples, err := s.Draw(context.Background(), table, 20000, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0.0
	for _, v := range samples {
		sum += v
		if v < 0 || v > 1 {
			t.Fatalf("sample %v outside [0,1]", v)
		}
	}
	mean := sum / float64(len(samples))
	if math.Abs(mean-table.Mean()) > 0.01 {
		t.Errorf("sample mean %v too far from table mean %v", mean, table.Mean())
	}
}

func TestDraw_Validation(t *testing.T) {
	s := NewSampler(NewSeededRNG())

	if _, err := s.Draw(context.Background(), testTable(t), 0, 42); !core.IsInvalidParameter(err) {
		t.Errorf("zero count: expected invalid parameter error, got %v", err)
	}
	if _, err := s.Draw(context.Background(), posterior.Table{}, 10, 42); !core.IsInvalidParameter(err) {
		t.Errorf("empty table: expected invalid parameter error, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	samples := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

	summary, err := Summarize(samples, 0.89)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(summary.Mean-0.5) > 1e-12 {
		t.Errorf("mean: expected 0.5, got %v", summary.Mean)
	}
	if summary.Lower >= summary.Upper {
		t.Errorf("interval inverted: [%v, %v]", summary.Lower, summary.Upper)
	}
	if summary.Count != len(samples) {
		t.Errorf("count: expected %d, got %d", len(samples), summary.Count)
	}

	t.Run("too few samples", func(t *testing.T) {
		if _, err := Summarize([]float64{0.5}, 0.89); err == nil {
			t.Error("expected error for a single sample")
		}
	})

	t.Run("invalid interval", func(t *testing.T) {
		if _, err := Summarize(samples, 1.5); !core.IsInvalidParameter(err) {
			t.Errorf("expected invalid parameter error, got %v", err)
		}
	})
}
