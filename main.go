package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-viewfactors/pkg/analytic"
	"github.com/df07/go-viewfactors/pkg/cases"
	"github.com/df07/go-viewfactors/pkg/config"
	"github.com/df07/go-viewfactors/pkg/core"
	"github.com/df07/go-viewfactors/pkg/logger"
	"github.com/df07/go-viewfactors/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses arguments, estimates the configured case and writes a report to out
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("viewfactors", flag.ContinueOnError)
	fs.SetOutput(out)

	var flags config.Flags
	flags.Register(fs)
	list := fs.Bool("list", false, "List available cases and exit")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *help {
		fmt.Fprintln(out, "Monte Carlo View Factors")
		fmt.Fprintln(out, "Usage: viewfactors [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		printCases(out)
		return nil
	}
	if *list {
		printCases(out)
		return nil
	}

	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	setup, err := createCase(cfg)
	if err != nil {
		return err
	}

	logger.Info("estimating view factors",
		zap.String("case", cfg.Estimate.Case),
		zap.Int("surfaces", setup.Scene.Len()),
		zap.Int("source", setup.Source),
		zap.Int("samples", cfg.Estimate.Samples),
		zap.Bool("parallel", cfg.Estimate.Parallel))

	start := time.Now()
	var viewFactors []float64
	var stats scene.EstimateStats
	if cfg.Estimate.Parallel {
		viewFactors, stats = setup.Scene.EstimateViewFactorsParallel(setup.Source, cfg.Estimate.Samples)
	} else {
		sampler := core.NewSeededSampler(cfg.Estimate.Seed)
		viewFactors, stats = setup.Scene.EstimateViewFactors(sampler, setup.Source, cfg.Estimate.Samples)
	}
	elapsed := time.Since(start)

	logger.Info("estimate complete",
		zap.Duration("elapsed", elapsed),
		zap.Int("rays", stats.Rays),
		zap.Int("dropped", stats.Dropped))

	printReport(out, cfg, setup, viewFactors, stats, elapsed)
	return nil
}

// createCase builds the configured case and applies the source override
func createCase(cfg *config.Config) (cases.Setup, error) {
	c, err := cases.Lookup(cfg.Estimate.Case)
	if err != nil {
		return cases.Setup{}, err
	}

	setup, err := c.Build(cfg.Estimate.Params)
	if err != nil {
		return cases.Setup{}, err
	}

	if cfg.Estimate.Source >= 0 {
		if cfg.Estimate.Source >= setup.Scene.Len() {
			return cases.Setup{}, fmt.Errorf("source surface %d out of range: case %s has %d surfaces",
				cfg.Estimate.Source, c.Name, setup.Scene.Len())
		}
		// The analytic value belongs to the default source
		if cfg.Estimate.Source != setup.Source {
			setup.HasAnalytic = false
		}
		setup.Source = cfg.Estimate.Source
	}

	setup.Scene.SetEstimatorConfig(scene.EstimatorConfig{
		NumWorkers: cfg.Estimate.Workers,
		Seed:       cfg.Estimate.Seed,
	})
	setup.Scene.SetLogger(logger.Named("scene"))

	return setup, nil
}

func printCases(out io.Writer) {
	fmt.Fprintln(out, "Available cases:")
	for _, c := range cases.All() {
		params := make([]string, 0, len(c.Defaults))
		for _, name := range c.ParamNames() {
			params = append(params, fmt.Sprintf("%s=%g", name, c.Defaults[name]))
		}
		fmt.Fprintf(out, "  %-26s %s [%s]\n", c.Name, c.Description, strings.Join(params, " "))
	}
}

func printReport(out io.Writer, cfg *config.Config, setup cases.Setup, viewFactors []float64, stats scene.EstimateStats, elapsed time.Duration) {
	fmt.Fprintf(out, "Case: %s (source surface %d)\n", cfg.Estimate.Case, setup.Source)
	fmt.Fprintf(out, "Rays traced: %d in %v", stats.Rays, elapsed)
	if stats.Dropped > 0 {
		fmt.Fprintf(out, " (%d dropped)", stats.Dropped)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Average bounces: %.3f, escapes: %d, early terminations: %d\n",
		stats.AverageBounces(), stats.Escapes, stats.EarlyTerminations)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Surface  Collider   Emissivity  View factor")
	for id, v := range viewFactors {
		s := setup.Scene.Surface(id)
		fmt.Fprintf(out, "%7d  %-9s  %10.3f  %11.6f\n", id, s.Collider(), s.Emissivity(), v)
	}

	if setup.HasAnalytic {
		measured := setup.Measure(viewFactors)
		target := "total"
		if setup.Target != cases.TargetTotal {
			target = fmt.Sprintf("surface %d", setup.Target)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Analytic (%s): %.6f\n", target, setup.Analytic)
		fmt.Fprintf(out, "Measured (%s): %.6f\n", target, measured)
		fmt.Fprintf(out, "Error: %+.3f%%\n", analytic.PercentError(setup.Analytic, measured))
	}
}
