package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tphakala/go-trajectory-spline/internal/lie"
)

// Deltas returns Log(R_j^T · R_{j+1}) for every consecutive pair of knots in
// the window. The result has one entry fewer than the window.
func Deltas(window []mgl64.Mat3) []mgl64.Vec3 {
	if len(window) == 0 {
		return nil
	}
	deltas := make([]mgl64.Vec3, len(window)-1)
	for j := range deltas {
		deltas[j] = lie.Delta(window[j], window[j+1])
	}
	return deltas
}

// ComposeSO3 evaluates the cumulative rotation
//
//	R = R_0 · Π_j Exp(weights[j+1] · delta_j)
//
// where weights are cumulative basis weights for the window.
func ComposeSO3(window []mgl64.Mat3, deltas []mgl64.Vec3, weights []float64) mgl64.Mat3 {
	checkWindow(window, deltas, weights)

	result := window[0]
	for j, delta := range deltas {
		result = result.Mul3(lie.Exp(delta.Mul(weights[j+1])))
	}
	return result
}

// AngularVelocity returns the body frame angular velocity ω with Ṙ = R·Hat(ω).
// w0 and w1 are the cumulative weights of order zero and one.
func AngularVelocity(window []mgl64.Mat3, deltas []mgl64.Vec3, w0, w1 []float64) mgl64.Vec3 {
	checkWindow(window, deltas, w0)
	checkWindow(window, deltas, w1)

	var velocity mgl64.Vec3
	for j, delta := range deltas {
		rotation := lie.Exp(delta.Mul(-w0[j+1]))
		velocity = rotation.Mul3x1(velocity).Add(delta.Mul(w1[j+1]))
	}
	return velocity
}

// AngularAcceleration returns the body frame angular velocity and its time
// derivative. The cross term uses the velocity after it has been carried into
// the current frame and before the new increment is added.
func AngularAcceleration(window []mgl64.Mat3, deltas []mgl64.Vec3, w0, w1, w2 []float64) (velocity, acceleration mgl64.Vec3) {
	checkWindow(window, deltas, w0)
	checkWindow(window, deltas, w1)
	checkWindow(window, deltas, w2)

	for j, delta := range deltas {
		rotation := lie.Exp(delta.Mul(-w0[j+1]))
		increment := delta.Mul(w1[j+1])

		velocity = rotation.Mul3x1(velocity)
		acceleration = rotation.Mul3x1(acceleration).
			Add(delta.Mul(w2[j+1])).
			Add(velocity.Cross(increment))
		velocity = velocity.Add(increment)
	}
	return velocity, acceleration
}

// RotationDerivative returns the derivative-th time derivative of R given the
// body frame velocity and acceleration:
//
//	Ṙ = R·Hat(ω)
//	R̈ = R·(Hat(ω)² + Hat(α))
func RotationDerivative(r mgl64.Mat3, velocity, acceleration mgl64.Vec3, derivative int) mgl64.Mat3 {
	switch derivative {
	case positionOrder:
		return r
	case velocityOrder:
		return r.Mul3(lie.Hat(velocity))
	case accelerationOrder:
		omega := lie.Hat(velocity)
		return r.Mul3(omega.Mul3(omega).Add(lie.Hat(acceleration)))
	default:
		panic(fmt.Sprintf("engine: unsupported derivative order %d", derivative))
	}
}

func checkWindow(window []mgl64.Mat3, deltas []mgl64.Vec3, weights []float64) {
	if len(window) == 0 || len(deltas) != len(window)-1 || len(weights) != len(window) {
		panic(fmt.Sprintf("engine: inconsistent SO(3) window: %d knots, %d deltas, %d weights",
			len(window), len(deltas), len(weights)))
	}
}
