// Command spline-sample evaluates a pose trajectory described in a YAML file
// and writes the sampled poses and velocities as CSV.
//
// Usage:
//
//	spline-sample -config trajectory.yaml -out samples.csv [-plot path.png]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	spline "github.com/tphakala/go-trajectory-spline"
	"github.com/tphakala/go-trajectory-spline/internal/config"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Trajectory YAML file")
	outPath := flag.String("out", "", "Output CSV file (default: stdout)")
	plotPath := flag.String("plot", "", "Write a PNG plot of the sampled translation")
	workers := flag.Int("workers", defaultWorkers, "Override sample.workers from the config file")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -config trajectory.yaml [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("missing -config")
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		return fmt.Errorf("could not create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	traj, err := config.LoadTrajectory(*configPath)
	if err != nil {
		return err
	}

	s, err := traj.Build()
	if err != nil {
		return err
	}
	start, end, ok := s.EvaluableRange()
	if !ok {
		return fmt.Errorf("%w: %d knots for order %d", spline.ErrEmptyRange, s.NumKnots(), s.Config().Order)
	}

	opts := traj.SampleOptions()
	if *workers >= 0 {
		opts.Workers = *workers
	}

	logger.Debug("trajectory loaded",
		zap.String("path", *configPath),
		zap.Int("knots", s.NumKnots()),
		zap.Int("order", s.Config().Order),
		zap.Uint64("start_ns", start),
		zap.Uint64("end_ns", end),
		zap.Uint64("step_ns", opts.Step),
		zap.Int("workers", opts.Workers),
		zap.String("simd", spline.SIMDInfo()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	began := time.Now()
	samples, err := spline.Sample(ctx, s, opts)
	if err != nil {
		return err
	}
	logger.Info("trajectory sampled",
		zap.Int("samples", len(samples)),
		zap.Duration("elapsed", time.Since(began)))

	visible, err := visibleCounts(traj, samples)
	if err != nil {
		return err
	}

	if err := writeOutput(*outPath, samples, visible); err != nil {
		return err
	}

	if *plotPath != "" {
		if err := savePlot(*plotPath, samples); err != nil {
			return err
		}
		logger.Info("plot written", zap.String("path", *plotPath))
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func writeOutput(path string, samples []spline.TrajectorySample, visible []int) error {
	if path == "" {
		return writeCSV(os.Stdout, samples, visible)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeCSV(f, samples, visible); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
