package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bayesgrid/adapters/api"
	"bayesgrid/adapters/export"
	"bayesgrid/adapters/stats/engine"
	"bayesgrid/adapters/stats/laplace"
	"bayesgrid/adapters/stats/sampler"
	"bayesgrid/app"
	"bayesgrid/domain/bernoulli"
	"bayesgrid/domain/posterior"
	"bayesgrid/domain/prior"
	"bayesgrid/internal"
	"bayesgrid/internal/config"
)

// observation flags shared by every subcommand
type obsFlags struct {
	trials    int
	successes int
}

func (f *obsFlags) register(cmd *cobra.Command, est config.EstimationConfig) {
	cmd.Flags().IntVar(&f.trials, "trials", est.Trials, "Number of binary trials")
	cmd.Flags().IntVar(&f.successes, "successes", est.Successes, "Number of observed successes")
}

func (f *obsFlags) observation() (bernoulli.Observation, error) {
	return bernoulli.NewObservation(f.successes, f.trials)
}

// output flags shared by series-producing subcommands
type outFlags struct {
	format string
	path   string
}

func (f *outFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "csv", "Output format: csv, json, or xlsx")
	cmd.Flags().StringVar(&f.path, "output", "-", "Output path, or - for stdout")
}

func (f *outFlags) writeSeries(series []posterior.Series) error {
	writer, err := export.ForFormat(f.format)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if f.path != "-" {
		file, err := os.Create(f.path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	} else if f.format == "xlsx" {
		return fmt.Errorf("xlsx output requires --output with a file path")
	}
	return writer.WriteSeries(out, series)
}

func main() {
	// .env is optional; environment variables win either way. The loaded
	// configuration supplies the flag defaults for every subcommand.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "bayesgrid",
		Short: "Posterior estimation for a binomial proportion by grid and quadratic approximation",
	}

	rootCmd.AddCommand(
		newEstimateCmd(cfg),
		newLaplaceCmd(cfg),
		newCompareCmd(cfg),
		newSweepCmd(cfg),
		newSequentialCmd(cfg),
		newSampleCmd(cfg),
		newServeCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEstimateCmd(cfg *config.Config) *cobra.Command {
	var obs obsFlags
	var out outFlags
	var points int
	var priorSpec string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Grid-approximate the posterior for an observed proportion",
		Long: `Discretize [0,1], weight each grid point by prior times binomial
likelihood, and normalize.

Example: bayesgrid estimate --trials 9 --successes 6 --points 20 --prior step:0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			observation, err := obs.observation()
			if err != nil {
				return err
			}
			pr, err := prior.Parse(priorSpec)
			if err != nil {
				return err
			}

			service := app.NewEstimateService(engine.NewGridEstimator())
			result, err := service.Run(cmd.Context(), app.EstimateRequest{
				Observation: observation,
				GridPoints:  points,
				Prior:       pr,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "run %s: mean=%.4f mode=%.4f sd=%.4f (%d points, prior %s)\n",
				result.RunID, result.Mean, result.Mode, result.StdDev, result.GridPoints, result.Prior)
			return out.writeSeries([]posterior.Series{result.Series()})
		},
	}

	obs.register(cmd, cfg.Estimation)
	out.register(cmd)
	cmd.Flags().IntVar(&points, "points", cfg.Estimation.GridPoints, "Grid resolution")
	cmd.Flags().StringVar(&priorSpec, "prior", cfg.Estimation.PriorSpec, "Prior spec: uniform, step:<t>, or laplace:<rate>,<center>")
	return cmd
}

func newLaplaceCmd(cfg *config.Config) *cobra.Command {
	var obs obsFlags

	cmd := &cobra.Command{
		Use:   "laplace",
		Short: "Quadratic (Gaussian) approximation of the posterior",
		RunE: func(cmd *cobra.Command, args []string) error {
			observation, err := obs.observation()
			if err != nil {
				return err
			}
			fit, err := laplace.NewApproximator().Approximate(cmd.Context(), observation)
			if err != nil {
				return err
			}
			fmt.Printf("mean=%.4f sd=%.4f\n", fit.Mean, fit.StdDev)
			return nil
		},
	}

	obs.register(cmd, cfg.Estimation)
	return cmd
}

func newCompareCmd(cfg *config.Config) *cobra.Command {
	var obs obsFlags
	var out outFlags
	var points int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Overlay the grid posterior against its quadratic approximation",
		RunE: func(cmd *cobra.Command, args []string) error {
			observation, err := obs.observation()
			if err != nil {
				return err
			}

			estimator := engine.NewGridEstimator()
			service := app.NewCompareService(estimator, laplace.NewApproximator())
			result, err := service.Run(cmd.Context(), app.CompareRequest{
				Observation: observation,
				GridPoints:  points,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "grid mode=%.4f sd=%.4f | quadratic mean=%.4f sd=%.4f | gaps mode=%.4f sd=%.4f\n",
				result.GridMode, result.GridStdDev, result.Fit.Mean, result.Fit.StdDev,
				result.ModeGap, result.StdDevGap)
			return out.writeSeries([]posterior.Series{result.GridSeries, result.LaplaceSeries})
		},
	}

	obs.register(cmd, cfg.Estimation)
	out.register(cmd)
	cmd.Flags().IntVar(&points, "points", 100, "Grid resolution")
	return cmd
}

func newSweepCmd(cfg *config.Config) *cobra.Command {
	var obs obsFlags
	var out outFlags
	var points []int
	var priorSpecs []string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate across multiple grid resolutions and priors",
		Long: `Run the grid estimator over the cross product of resolutions and
priors, reporting each posterior mean and its error against the exact
conjugate Beta mean.

Example: bayesgrid sweep --points 20,100,1000 --prior uniform --prior step:0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			observation, err := obs.observation()
			if err != nil {
				return err
			}
			priors := make([]prior.Prior, 0, len(priorSpecs))
			for _, spec := range priorSpecs {
				pr, err := prior.Parse(spec)
				if err != nil {
					return err
				}
				priors = append(priors, pr)
			}

			service := app.NewSweepService(engine.NewGridEstimator())
			result, err := service.Run(cmd.Context(), app.SweepRequest{
				Observation: observation,
				Resolutions: points,
				Priors:      priors,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "sweep %s: conjugate mean=%.6f\n", result.SweepID, result.ConjugateMean)
			for _, cell := range result.Cells {
				fmt.Fprintf(os.Stderr, "  n=%-5d prior=%-14s mean=%.6f mode=%.4f err=%.2e\n",
					cell.GridPoints, cell.Prior, cell.Mean, cell.Mode, cell.MeanError)
			}
			return out.writeSeries(result.Series())
		},
	}

	obs.register(cmd, cfg.Estimation)
	out.register(cmd)
	cmd.Flags().IntSliceVar(&points, "points", []int{20, 100, 1000}, "Grid resolutions")
	cmd.Flags().StringArrayVar(&priorSpecs, "prior", []string{cfg.Estimation.PriorSpec}, "Prior specs (repeatable)")
	return cmd
}

func newSequentialCmd(cfg *config.Config) *cobra.Command {
	var out outFlags
	var points int
	var priorSpec string
	var record string

	cmd := &cobra.Command{
		Use:   "sequential",
		Short: "Replay a toss record, emitting the posterior after each outcome",
		Long: `Fold a record of binary outcomes one at a time and emit each
intermediate posterior.

Example: bayesgrid sequential --record WLWWWLWLW --points 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcomes, err := parseRecord(record)
			if err != nil {
				return err
			}
			pr, err := prior.Parse(priorSpec)
			if err != nil {
				return err
			}

			service := app.NewSequentialService(engine.NewGridEstimator())
			steps, err := service.Run(cmd.Context(), outcomes, points, pr)
			if err != nil {
				return err
			}

			for _, step := range steps {
				fmt.Fprintf(os.Stderr, "after %s: mean=%.4f\n", step.Observation, step.Mean)
			}
			return out.writeSeries(app.StepSeries(steps))
		},
	}

	out.register(cmd)
	cmd.Flags().IntVar(&points, "points", cfg.Estimation.GridPoints, "Grid resolution")
	cmd.Flags().StringVar(&priorSpec, "prior", cfg.Estimation.PriorSpec, "Prior spec")
	cmd.Flags().StringVar(&record, "record", "WLWWWLWLW", "Outcome record: W/1 for success, L/0 for failure")
	return cmd
}

func newSampleCmd(cfg *config.Config) *cobra.Command {
	var obs obsFlags
	var points, draws int
	var priorSpec string
	var seed int64
	var interval float64

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw from the grid posterior and summarize the samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			observation, err := obs.observation()
			if err != nil {
				return err
			}
			pr, err := prior.Parse(priorSpec)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			table, err := engine.NewGridEstimator().Estimate(ctx, observation, points, pr)
			if err != nil {
				return err
			}
			samples, err := sampler.NewSampler(sampler.NewSeededRNG()).Draw(ctx, table, draws, seed)
			if err != nil {
				return err
			}
			summary, err := sampler.Summarize(samples, interval)
			if err != nil {
				return err
			}

			fmt.Printf("draws=%d mean=%.4f median=%.4f sd=%.4f %.0f%% interval=[%.4f, %.4f]\n",
				summary.Count, summary.Mean, summary.Median, summary.StdDev,
				summary.Interval*100, summary.Lower, summary.Upper)
			return nil
		},
	}

	obs.register(cmd, cfg.Estimation)
	cmd.Flags().IntVar(&points, "points", 1000, "Grid resolution")
	cmd.Flags().StringVar(&priorSpec, "prior", cfg.Estimation.PriorSpec, "Prior spec")
	cmd.Flags().IntVar(&draws, "draws", cfg.Sampling.Draws, "Number of posterior draws")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Sampling.Seed, "Random seed for deterministic draws")
	cmd.Flags().Float64Var(&interval, "interval", cfg.Sampling.Interval, "Central interval mass")
	return cmd
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimation API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			estimator := engine.NewGridEstimator()
			server := api.NewServer(
				cfg,
				app.NewEstimateService(estimator),
				app.NewCompareService(estimator, laplace.NewApproximator()),
				app.NewSweepService(estimator),
				laplace.NewApproximator(),
				sampler.NewSampler(sampler.NewSeededRNG()),
				internal.NewDefaultLogger(),
			)
			return server.Start(cfg.Server.Port)
		},
	}
	return cmd
}

// parseRecord reads a compact outcome record like "WLWWWLWLW" or "101110101".
func parseRecord(record string) ([]bool, error) {
	outcomes := make([]bool, 0, len(record))
	for _, r := range record {
		switch r {
		case 'W', 'w', '1':
			outcomes = append(outcomes, true)
		case 'L', 'l', '0':
			outcomes = append(outcomes, false)
		case ' ', ',':
			// separators allowed
		default:
			return nil, fmt.Errorf("unrecognized outcome %q in record (want W/L or 1/0)", r)
		}
	}
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("outcome record is empty")
	}
	return outcomes, nil
}
