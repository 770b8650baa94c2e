package main

import (
	"log"

	"github.com/joho/godotenv"

	"bayesgrid/adapters/api"
	"bayesgrid/adapters/stats/engine"
	"bayesgrid/adapters/stats/laplace"
	"bayesgrid/adapters/stats/sampler"
	"bayesgrid/app"
	"bayesgrid/internal"
	"bayesgrid/internal/config"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()
	estimator := engine.NewGridEstimator()

	server := api.NewServer(
		cfg,
		app.NewEstimateService(estimator),
		app.NewCompareService(estimator, laplace.NewApproximator()),
		app.NewSweepService(estimator),
		laplace.NewApproximator(),
		sampler.NewSampler(sampler.NewSeededRNG()),
		logger,
	)

	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
