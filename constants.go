package spline

import "github.com/tphakala/go-trajectory-spline/internal/basis"

// Spline order limits
const (
	// DefaultOrder is the cubic spline order used throughout calibration.
	DefaultOrder = 4

	// MaxOrder is the largest order whose basis matrices are supported.
	// Factorials above 20! overflow uint64.
	MaxOrder = basis.MaxOrder

	minOrder = 1
)

// Sampling constants
const (
	defaultWorkers = 1 // Sequential sampling unless asked otherwise
	maxWorkers     = 256
)
