package spline

import (
	"github.com/go-gl/mathgl/mgl64"
)

// SE3Spline couples an R³ spline for translation with an SO(3) spline for
// rotation. Both halves share one timing and are kept in lockstep by AddKnot.
type SE3Spline struct {
	translation *R3Spline
	rotation    *SO3Spline
}

// NewSE3Spline creates an empty pose spline with the given timing.
func NewSE3Spline(cfg Config) (*SE3Spline, error) {
	translation, err := NewR3Spline(cfg)
	if err != nil {
		return nil, err
	}
	rotation, err := NewSO3Spline(cfg)
	if err != nil {
		return nil, err
	}
	return &SE3Spline{translation: translation, rotation: rotation}, nil
}

// Config returns the timing of the spline.
func (s *SE3Spline) Config() Config { return s.translation.Config() }

// AddKnot appends the pose for the next knot time.
func (s *SE3Spline) AddKnot(p Pose) {
	s.rotation.AppendKnot(p.Rotation)
	s.translation.AppendKnot(p.Translation)
}

// NumKnots returns the number of knots appended so far.
func (s *SE3Spline) NumKnots() int { return s.translation.NumKnots() }

// Knot returns the i-th control pose. It panics if i is out of range.
func (s *SE3Spline) Knot(i int) Pose {
	return Pose{Rotation: s.rotation.Knot(i), Translation: s.translation.Knot(i)}
}

// EvaluableRange returns the half-open interval of timestamps the evaluation
// methods accept. ok is false while fewer than Order knots exist.
func (s *SE3Spline) EvaluableRange() (start, end uint64, ok bool) {
	return s.translation.EvaluableRange()
}

// Evaluate returns the pose at t. It reports false unless both halves can be
// evaluated. It panics if t precedes the start time.
func (s *SE3Spline) Evaluate(t uint64) (Pose, bool) {
	rotation, ok := s.rotation.Evaluate(t, Zero)
	if !ok {
		return Pose{}, false
	}
	translation, ok := s.translation.Evaluate(t, Zero)
	if !ok {
		return Pose{}, false
	}
	return Pose{Rotation: rotation, Translation: translation}, true
}

// EvaluateVelocity returns the linear velocity in the world frame and the
// angular velocity in the body frame, both per nanosecond.
func (s *SE3Spline) EvaluateVelocity(t uint64) (linear, angular mgl64.Vec3, ok bool) {
	angular, ok = s.rotation.EvaluateVelocity(t)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	linear, ok = s.translation.Evaluate(t, First)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return linear, angular, true
}

// EvaluateAcceleration returns the linear acceleration in the world frame and
// the angular acceleration in the body frame, both per square nanosecond.
func (s *SE3Spline) EvaluateAcceleration(t uint64) (linear, angular mgl64.Vec3, ok bool) {
	angular, ok = s.rotation.EvaluateAcceleration(t)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	linear, ok = s.translation.Evaluate(t, Second)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return linear, angular, true
}
