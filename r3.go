package spline

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tphakala/go-trajectory-spline/internal/engine"
)

// R3Spline is a uniform B-spline over positions in R³.
//
// Knots are appended in time order and never removed. Evaluation does not
// mutate the spline, so concurrent Evaluate calls are safe as long as no
// goroutine is appending at the same time.
type R3Spline struct {
	kernel *engine.Kernel
	knots  []mgl64.Vec3
}

// NewR3Spline creates an empty R³ spline with the given timing.
func NewR3Spline(cfg Config) (*R3Spline, error) {
	kernel, err := newKernel(cfg)
	if err != nil {
		return nil, err
	}
	return &R3Spline{kernel: kernel}, nil
}

// Config returns the timing of the spline.
func (s *R3Spline) Config() Config { return configOf(s.kernel) }

// AppendKnot adds the control point for the next knot time.
func (s *R3Spline) AppendKnot(p mgl64.Vec3) {
	s.knots = append(s.knots, p)
}

// NumKnots returns the number of knots appended so far.
func (s *R3Spline) NumKnots() int { return len(s.knots) }

// Knot returns the i-th control point. It panics if i is out of range.
func (s *R3Spline) Knot(i int) mgl64.Vec3 { return s.knots[i] }

// EvaluableRange returns the half-open interval of timestamps Evaluate
// accepts. ok is false while fewer than Order knots exist.
func (s *R3Spline) EvaluableRange() (start, end uint64, ok bool) {
	return s.kernel.EvaluableRange(len(s.knots))
}

// Evaluate returns the position or one of its time derivatives at t, in
// units per nanosecond for derivatives. It reports false when the knots
// around t have not been appended yet.
//
// It panics if t precedes the start time or if the derivative does not exist
// for the spline order.
func (s *R3Spline) Evaluate(t uint64, order DerivativeOrder) (mgl64.Vec3, bool) {
	d := derivativeIndex(s.kernel, order)

	pos, ok := s.kernel.SplinePosition(t, len(s.knots))
	if !ok {
		return mgl64.Vec3{}, false
	}

	weights := s.kernel.Weights(pos.U, d, false)
	return engine.BlendR3(s.window(pos), weights), true
}

func (s *R3Spline) window(pos engine.Position) []mgl64.Vec3 {
	return s.knots[pos.Index : pos.Index+s.kernel.Order()]
}
