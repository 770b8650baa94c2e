package config

import (
	"testing"

	"bayesgrid/domain/prior"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Estimation.Trials != 9 || cfg.Estimation.Successes != 6 {
		t.Errorf("expected default observation 6/9, got %d/%d", cfg.Estimation.Successes, cfg.Estimation.Trials)
	}
	if cfg.Estimation.Prior.Kind != prior.KindUniform {
		t.Errorf("expected uniform default prior, got %s", cfg.Estimation.Prior.Kind)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TRIALS", "20")
	t.Setenv("SUCCESSES", "5")
	t.Setenv("PRIOR", "step:0.25")
	t.Setenv("GRID_POINTS", "200")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Estimation.Trials != 20 || cfg.Estimation.Successes != 5 {
		t.Errorf("override not applied: got %d/%d", cfg.Estimation.Successes, cfg.Estimation.Trials)
	}
	if cfg.Estimation.Prior.Kind != prior.KindStep || cfg.Estimation.Prior.Threshold != 0.25 {
		t.Errorf("prior override not applied: %+v", cfg.Estimation.Prior)
	}
	if cfg.Estimation.PriorSpec != "step:0.25" {
		t.Errorf("expected raw prior spec to be retained, got %q", cfg.Estimation.PriorSpec)
	}
	if cfg.Estimation.GridPoints != 200 {
		t.Errorf("grid points override not applied: %d", cfg.Estimation.GridPoints)
	}
}

func TestLoad_InvalidObservation(t *testing.T) {
	t.Setenv("TRIALS", "5")
	t.Setenv("SUCCESSES", "9")

	if _, err := Load(); err == nil {
		t.Error("expected error for successes > trials")
	}
}

func TestLoad_InvalidPrior(t *testing.T) {
	t.Setenv("PRIOR", "step:1.5")

	if _, err := Load(); err == nil {
		t.Error("expected error for out-of-range threshold")
	}
}
