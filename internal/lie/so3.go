// Package lie implements the exponential and logarithm maps of the rotation
// group SO(3) together with the hat/vee isomorphism between rotation vectors
// and skew-symmetric matrices.
package lie

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hat returns the skew-symmetric matrix of a, so that Hat(a)*v = a × v.
func Hat(a mgl64.Vec3) mgl64.Mat3 {
	// mgl64 matrices are column-major.
	return mgl64.Mat3{
		0, a[2], -a[1],
		-a[2], 0, a[0],
		a[1], -a[0], 0,
	}
}

// Vee is the inverse of Hat. It reads (A[2,1], A[0,2], A[1,0]) and does not
// check that A is skew-symmetric.
func Vee(a mgl64.Mat3) mgl64.Vec3 {
	return mgl64.Vec3{a.At(2, 1), a.At(0, 2), a.At(1, 0)}
}

// Exp maps a rotation vector (axis scaled by angle) to a rotation matrix
// using Rodrigues' formula. Angles below smallAngle fall back to the first
// order expansion I + Hat(phi).
func Exp(phi mgl64.Vec3) mgl64.Mat3 {
	angle := phi.Len()
	if angle < smallAngle {
		return mgl64.Ident3().Add(Hat(phi))
	}

	axis := phi.Mul(1 / angle)
	cos := math.Cos(angle)
	sin := math.Sin(angle)

	return mgl64.Ident3().Mul(cos).
		Add(outer(axis).Mul(1 - cos)).
		Add(Hat(axis).Mul(sin))
}

// Log maps a rotation matrix back to its rotation vector. Angles below
// smallAngle use the first order expansion Vee(R - I).
//
// Log is not defined for angles approaching π: sin(θ) goes to zero and the
// closed form divides by it, returning large or non-finite values. Callers
// must keep relative rotations away from a half turn.
func Log(r mgl64.Mat3) mgl64.Vec3 {
	cos := halfTraceOffset*r.Trace() - halfTraceOffset
	cos = math.Max(-1, math.Min(1, cos))

	angle := math.Acos(cos)
	if angle < smallAngle {
		return Vee(r.Sub(mgl64.Ident3()))
	}

	// TODO: branch on angle near π using the symmetric part of R.
	return Vee(r.Sub(r.Transpose()).Mul(halfTraceOffset * angle / math.Sin(angle)))
}

// Delta returns the rotation vector taking r0 to r1 in the body frame of r0,
// Log(r0⁻¹ r1). Rotation matrices are orthonormal so the inverse is the
// transpose.
func Delta(r0, r1 mgl64.Mat3) mgl64.Vec3 {
	return Log(r0.Transpose().Mul3(r1))
}

// outer returns v vᵀ.
func outer(v mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3FromCols(v.Mul(v[0]), v.Mul(v[1]), v.Mul(v[2]))
}
