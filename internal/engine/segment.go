// Package engine holds the evaluation machinery shared by the R³ and SO(3)
// splines: segment bookkeeping, basis weights and the blending kernels.
package engine

import (
	"fmt"
)

// Position locates a timestamp inside the knot sequence.
type Position struct {
	// U is the normalized time inside the segment, in [0, 1).
	U float64

	// Index is the segment index, which is also the first knot of the
	// evaluation window.
	Index int
}

// TimeHandler maps nanosecond timestamps onto spline segments for a uniform
// knot spacing.
type TimeHandler struct {
	startTime    uint64
	knotInterval uint64
	order        int
}

// NewTimeHandler returns a TimeHandler for knots spaced knotInterval apart
// starting at startTime. It panics if knotInterval is zero or order is below 1.
func NewTimeHandler(startTime, knotInterval uint64, order int) TimeHandler {
	if knotInterval == 0 {
		panic("engine: knot interval must be positive")
	}
	if order < 1 {
		panic(fmt.Sprintf("engine: order %d must be at least 1", order))
	}
	return TimeHandler{
		startTime:    startTime,
		knotInterval: knotInterval,
		order:        order,
	}
}

// StartTime returns the timestamp of the first knot.
func (h TimeHandler) StartTime() uint64 { return h.startTime }

// KnotInterval returns the spacing between knots in nanoseconds.
func (h TimeHandler) KnotInterval() uint64 { return h.knotInterval }

// Order returns the spline order k.
func (h TimeHandler) Order() int { return h.order }

// NormalizedSegmentTime returns the segment index and local time of t.
// The division is done on integers so that segment boundaries are exact.
// It panics if t precedes the start time.
func (h TimeHandler) NormalizedSegmentTime(t uint64) Position {
	segment, remainder := h.split(t)
	return Position{
		U:     float64(remainder) / float64(h.knotInterval),
		Index: int(segment),
	}
}

// SplinePosition resolves t against a sequence of numKnots knots. It reports
// false when the window of k knots starting at the segment index is not yet
// complete. It panics if t precedes the start time.
func (h TimeHandler) SplinePosition(t uint64, numKnots int) (Position, bool) {
	segment, remainder := h.split(t)

	// Written as a subtraction so that segment+k cannot overflow.
	if numKnots < h.order || segment > uint64(numKnots-h.order) {
		return Position{}, false
	}

	return Position{
		U:     float64(remainder) / float64(h.knotInterval),
		Index: int(segment),
	}, true
}

// EvaluableRange returns the half-open interval [start, end) of timestamps
// that SplinePosition accepts for numKnots knots. ok is false while fewer
// than k knots exist.
func (h TimeHandler) EvaluableRange(numKnots int) (start, end uint64, ok bool) {
	if numKnots < h.order {
		return 0, 0, false
	}
	segments := uint64(numKnots - h.order + 1)
	return h.startTime, h.startTime + segments*h.knotInterval, true
}

func (h TimeHandler) split(t uint64) (segment, remainder uint64) {
	if t < h.startTime {
		panic(fmt.Sprintf("engine: timestamp %d precedes start time %d", t, h.startTime))
	}
	elapsed := t - h.startTime
	return elapsed / h.knotInterval, elapsed % h.knotInterval
}
