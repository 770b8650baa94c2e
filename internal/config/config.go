package config

import (
	"os"
	"strconv"

	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/prior"
	"bayesgrid/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Estimation EstimationConfig
	Sampling   SamplingConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// EstimationConfig holds the default observation and estimator settings.
// Every value can be overridden per request; these are the defaults used
// when a caller supplies nothing.
type EstimationConfig struct {
	Successes  int
	Trials     int
	GridPoints int
	Prior      prior.Prior
	PriorSpec  string // the raw spec the prior was parsed from
}

// SamplingConfig holds posterior sampling defaults
type SamplingConfig struct {
	Seed     int64
	Draws    int
	Interval float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	est, err := loadEstimationConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load estimation configuration")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Estimation: *est,
		Sampling: SamplingConfig{
			Seed:     getEnvInt64OrDefault("SEED", 42),
			Draws:    getEnvIntOrDefault("DRAWS", 10000),
			Interval: getEnvFloatOrDefault("INTERVAL", 0.89),
		},
	}

	if cfg.Sampling.Draws <= 0 {
		return nil, errors.ConfigInvalid("DRAWS must be positive")
	}
	if cfg.Sampling.Interval <= 0 || cfg.Sampling.Interval >= 1 {
		return nil, errors.ConfigInvalid("INTERVAL must be in (0,1)")
	}
	return cfg, nil
}

func loadEstimationConfig() (*EstimationConfig, error) {
	successes := getEnvIntOrDefault("SUCCESSES", 6)
	trials := getEnvIntOrDefault("TRIALS", 9)
	if _, err := bernoulli.NewObservation(successes, trials); err != nil {
		return nil, errors.Wrap(err, "invalid SUCCESSES/TRIALS")
	}

	gridPoints := getEnvIntOrDefault("GRID_POINTS", 20)
	if gridPoints < 2 {
		return nil, errors.ConfigInvalid("GRID_POINTS must be >= 2")
	}

	priorSpec := getEnvOrDefault("PRIOR", "uniform")
	pr, err := prior.Parse(priorSpec)
	if err != nil {
		return nil, errors.Wrap(err, "invalid PRIOR")
	}

	return &EstimationConfig{
		Successes:  successes,
		Trials:     trials,
		GridPoints: gridPoints,
		Prior:      pr,
		PriorSpec:  priorSpec,
	}, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
