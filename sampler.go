package spline

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// SampleOptions controls how a trajectory is sampled.
type SampleOptions struct {
	// Step is the spacing between samples in nanoseconds.
	Step uint64

	// Workers is the number of goroutines evaluating samples.
	// Zero selects sequential sampling.
	Workers int
}

// Validate checks if the options are valid.
func (o *SampleOptions) Validate() error {
	if o.Step == 0 {
		return fmt.Errorf("%w: step must be positive", ErrInvalidSample)
	}

	if o.Workers < 0 || o.Workers > maxWorkers {
		return fmt.Errorf("%w: workers must be 0-%d, got %d", ErrInvalidSample, maxWorkers, o.Workers)
	}

	return nil
}

// TrajectorySample is the state of a pose spline at one timestamp. Velocities
// stay zero for order 1 splines.
type TrajectorySample struct {
	Time            uint64
	Pose            Pose
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3
}

// Sample evaluates s every opts.Step nanoseconds across its evaluable range.
// With more than one worker, contiguous chunks of timestamps are evaluated
// concurrently; s must not be appended to until Sample returns.
func Sample(ctx context.Context, s *SE3Spline, opts SampleOptions) ([]TrajectorySample, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start, end, ok := s.EvaluableRange()
	if !ok {
		return nil, fmt.Errorf("%w: %d knots, order %d", ErrEmptyRange, s.NumKnots(), s.Config().Order)
	}

	count := int((end - start + opts.Step - 1) / opts.Step)
	samples := make([]TrajectorySample, count)

	workers := opts.Workers
	if workers == 0 {
		workers = defaultWorkers
	}

	// Sequential sampling (default or single worker)
	if workers == 1 || count == 1 {
		if err := sampleRange(ctx, s, start, opts.Step, samples); err != nil {
			return nil, err
		}
		return samples, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (count + workers - 1) / workers

	for first := 0; first < count; first += chunk {
		last := min(first+chunk, count)
		g.Go(func() error {
			return sampleRange(ctx, s, start+uint64(first)*opts.Step, opts.Step, samples[first:last])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return samples, nil
}

// sampleRange fills dst with consecutive samples starting at from.
func sampleRange(ctx context.Context, s *SE3Spline, from, step uint64, dst []TrajectorySample) error {
	for i := range dst {
		if err := ctx.Err(); err != nil {
			return err
		}

		t := from + uint64(i)*step
		pose, ok := s.Evaluate(t)
		if !ok {
			return fmt.Errorf("%w: t=%d", ErrEmptyRange, t)
		}

		dst[i] = TrajectorySample{Time: t, Pose: pose}

		// A piecewise constant spline has no velocity.
		if s.Config().Order == minOrder {
			continue
		}

		linear, angular, ok := s.EvaluateVelocity(t)
		if !ok {
			return fmt.Errorf("%w: t=%d", ErrEmptyRange, t)
		}
		dst[i].LinearVelocity = linear
		dst[i].AngularVelocity = angular
	}

	return nil
}
