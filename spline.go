package spline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-trajectory-spline/internal/engine"
	"github.com/tphakala/go-trajectory-spline/internal/simdops"
)

// Common errors returned by the spline package.
var (
	// ErrInvalidConfig indicates invalid spline timing or order.
	ErrInvalidConfig = errors.New("invalid spline configuration")

	// ErrEmptyRange indicates that a spline has too few knots to be evaluated anywhere.
	ErrEmptyRange = errors.New("spline has no evaluable range")

	// ErrInvalidSample indicates invalid sampling options.
	ErrInvalidSample = errors.New("invalid sampling options")
)

// DerivativeOrder selects which time derivative of the curve to evaluate.
type DerivativeOrder int

const (
	// Zero evaluates the curve itself (position or orientation).
	Zero DerivativeOrder = iota

	// First evaluates the first time derivative (velocity).
	First

	// Second evaluates the second time derivative (acceleration).
	Second
)

// String implements fmt.Stringer.
func (d DerivativeOrder) String() string {
	switch d {
	case Zero:
		return "zero"
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("DerivativeOrder(%d)", int(d))
	}
}

// index maps the order onto the coefficient row it selects. This is the only
// place a DerivativeOrder is turned into an integer.
func (d DerivativeOrder) index() int {
	switch d {
	case Zero:
		return 0
	case First:
		return 1
	case Second:
		return 2
	default:
		panic(fmt.Sprintf("spline: unknown derivative order %d", int(d)))
	}
}

// Config holds the timing shared by every knot of a spline.
type Config struct {
	// StartTime is the timestamp of the first knot in nanoseconds.
	StartTime uint64

	// KnotInterval is the spacing between consecutive knots in nanoseconds.
	KnotInterval uint64

	// Order is the spline order k (degree k-1). Zero selects DefaultOrder.
	Order int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.KnotInterval == 0 {
		return fmt.Errorf("%w: knot interval must be positive", ErrInvalidConfig)
	}

	if c.Order < minOrder || c.Order > MaxOrder {
		return fmt.Errorf("%w: order must be %d-%d, got %d", ErrInvalidConfig, minOrder, MaxOrder, c.Order)
	}

	return nil
}

// withDefaults returns a copy of c with a zero order replaced by DefaultOrder.
func (c Config) withDefaults() Config {
	if c.Order == 0 {
		c.Order = DefaultOrder
	}
	return c
}

// SIMDInfo returns the instruction set used by the blending kernels.
func SIMDInfo() string {
	return simdops.Info()
}

// newKernel validates cfg and builds the shared evaluation kernel.
func newKernel(cfg Config) (*engine.Kernel, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return engine.NewKernel(cfg.StartTime, cfg.KnotInterval, cfg.Order), nil
}

// configOf reports the timing a kernel was built with.
func configOf(k *engine.Kernel) Config {
	return Config{
		StartTime:    k.StartTime(),
		KnotInterval: k.KnotInterval(),
		Order:        k.Order(),
	}
}

// derivativeIndex resolves order against the spline order, panicking when the
// derivative does not exist for that order.
func derivativeIndex(k *engine.Kernel, order DerivativeOrder) int {
	d := order.index()
	if !k.Supports(d) {
		panic(fmt.Sprintf("spline: %s derivative requires order above %d, spline order is %d", order, d, k.Order()))
	}
	return d
}
