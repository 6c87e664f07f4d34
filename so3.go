package spline

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tphakala/go-trajectory-spline/internal/engine"
)

// SO3Spline is a uniform cumulative B-spline over rotations. Consecutive knots
// are joined through the exponential map, so every evaluated value is a proper
// rotation.
//
// Angular velocity and acceleration are expressed in the body frame:
// Ṙ = R·Hat(ω). Concurrency rules match [R3Spline].
type SO3Spline struct {
	kernel *engine.Kernel
	knots  []mgl64.Mat3
}

// NewSO3Spline creates an empty rotation spline with the given timing.
func NewSO3Spline(cfg Config) (*SO3Spline, error) {
	kernel, err := newKernel(cfg)
	if err != nil {
		return nil, err
	}
	return &SO3Spline{kernel: kernel}, nil
}

// Config returns the timing of the spline.
func (s *SO3Spline) Config() Config { return configOf(s.kernel) }

// AppendKnot adds the rotation for the next knot time. r is not checked for
// orthonormality.
func (s *SO3Spline) AppendKnot(r mgl64.Mat3) {
	s.knots = append(s.knots, r)
}

// NumKnots returns the number of knots appended so far.
func (s *SO3Spline) NumKnots() int { return len(s.knots) }

// Knot returns the i-th control rotation. It panics if i is out of range.
func (s *SO3Spline) Knot(i int) mgl64.Mat3 { return s.knots[i] }

// EvaluableRange returns the half-open interval of timestamps the evaluation
// methods accept. ok is false while fewer than Order knots exist.
func (s *SO3Spline) EvaluableRange() (start, end uint64, ok bool) {
	return s.kernel.EvaluableRange(len(s.knots))
}

// Evaluate returns R(t) for Zero, Ṙ(t) = R·Hat(ω) for First and
// R̈(t) = R·(Hat(ω)² + Hat(α)) for Second. It reports false when the knots
// around t have not been appended yet.
//
// It panics if t precedes the start time or if the derivative does not exist
// for the spline order.
func (s *SO3Spline) Evaluate(t uint64, order DerivativeOrder) (mgl64.Mat3, bool) {
	d := derivativeIndex(s.kernel, order)

	pos, ok := s.kernel.SplinePosition(t, len(s.knots))
	if !ok {
		return mgl64.Mat3{}, false
	}

	window := s.window(pos)
	deltas := engine.Deltas(window)
	w0 := s.kernel.Weights(pos.U, Zero.index(), true)
	r := engine.ComposeSO3(window, deltas, w0)

	switch order {
	case First:
		w1 := s.kernel.Weights(pos.U, First.index(), true)
		velocity := engine.AngularVelocity(window, deltas, w0, w1)
		return engine.RotationDerivative(r, velocity, mgl64.Vec3{}, d), true
	case Second:
		w1 := s.kernel.Weights(pos.U, First.index(), true)
		w2 := s.kernel.Weights(pos.U, Second.index(), true)
		velocity, acceleration := engine.AngularAcceleration(window, deltas, w0, w1, w2)
		return engine.RotationDerivative(r, velocity, acceleration, d), true
	default:
		return r, true
	}
}

// EvaluateVelocity returns the body frame angular velocity ω(t) in radians
// per nanosecond. It reports false when the knots around t have not been
// appended yet. It panics if t precedes the start time or the order is 1.
func (s *SO3Spline) EvaluateVelocity(t uint64) (mgl64.Vec3, bool) {
	derivativeIndex(s.kernel, First)

	pos, ok := s.kernel.SplinePosition(t, len(s.knots))
	if !ok {
		return mgl64.Vec3{}, false
	}

	window := s.window(pos)
	w0 := s.kernel.Weights(pos.U, Zero.index(), true)
	w1 := s.kernel.Weights(pos.U, First.index(), true)
	return engine.AngularVelocity(window, engine.Deltas(window), w0, w1), true
}

// EvaluateAcceleration returns the body frame angular acceleration α(t) in
// radians per square nanosecond. It reports false when the knots around t
// have not been appended yet. It panics if t precedes the start time or the
// order is below 3.
func (s *SO3Spline) EvaluateAcceleration(t uint64) (mgl64.Vec3, bool) {
	_, acceleration, ok := s.evaluateMotion(t)
	return acceleration, ok
}

// evaluateMotion returns ω(t) and α(t) from a single pass over the window.
func (s *SO3Spline) evaluateMotion(t uint64) (velocity, acceleration mgl64.Vec3, ok bool) {
	derivativeIndex(s.kernel, Second)

	pos, ok := s.kernel.SplinePosition(t, len(s.knots))
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}

	window := s.window(pos)
	w0 := s.kernel.Weights(pos.U, Zero.index(), true)
	w1 := s.kernel.Weights(pos.U, First.index(), true)
	w2 := s.kernel.Weights(pos.U, Second.index(), true)
	velocity, acceleration = engine.AngularAcceleration(window, engine.Deltas(window), w0, w1, w2)
	return velocity, acceleration, true
}

func (s *SO3Spline) window(pos engine.Position) []mgl64.Mat3 {
	return s.knots[pos.Index : pos.Index+s.kernel.Order()]
}
