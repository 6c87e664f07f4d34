// Package spline provides uniform cumulative B-splines on R³, SO(3) and SE(3)
// for continuous-time trajectory estimation.
//
// Control points (knots) are spaced a fixed number of nanoseconds apart,
// starting at a fixed timestamp. A spline of order k is defined wherever k
// consecutive knots exist, and evaluation returns the interpolated value
// together with its first and second time derivatives.
//
// # Features
//
//   - Translation splines in R³ using the standard B-spline blending matrix
//   - Rotation splines on SO(3) using the cumulative formulation, which keeps
//     every evaluated matrix on the rotation manifold
//   - Pose splines on SE(3) combining an R³ and an SO(3) spline with shared timing
//   - Body-frame angular velocity and acceleration computed in closed form
//   - Integer nanosecond timestamps, so segment lookup never loses precision
//   - Concurrent sampling of whole trajectories via [Sample]
//   - Optional SIMD acceleration (AVX2/NEON) via github.com/tphakala/simd
//
// # Quick Start
//
//	s, err := spline.NewSE3Spline(spline.Config{
//	    StartTime:    0,
//	    KnotInterval: 100_000_000, // 10 Hz knots
//	    Order:        spline.DefaultOrder,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range poses {
//	    s.AddKnot(p)
//	}
//
//	pose, ok := s.Evaluate(t)
//	if !ok {
//	    // t is outside [EvaluableRange)
//	}
//	linear, angular, ok := s.EvaluateVelocity(t)
//
// # Evaluation Rules
//
// Evaluate returns false when t lies past the last complete window of knots.
// Timestamps before the start time, and derivative orders the spline cannot
// represent (order k supports derivatives below k, at most the second), are
// programming errors and panic.
//
// Rotation derivatives from [SO3Spline.Evaluate] are the matrix derivatives
// dR/dt and d²R/dt². [SO3Spline.EvaluateVelocity] and
// [SO3Spline.EvaluateAcceleration] return the body-frame angular velocity ω
// and its derivative, satisfying dR/dt = R·[ω]×.
//
// # Thread Safety
//
// Evaluation does not modify a spline and may run from many goroutines.
// Appending knots must not race with evaluation.
package spline
