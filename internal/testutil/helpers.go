// Package testutil provides reusable test helper functions for spline tests.
package testutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	RotationTolerance = 1e-10
	LooseTolerance    = 1e-6
)

// IsRotation reports whether r is orthonormal with determinant +1.
func IsRotation(r mgl64.Mat3, tolerance float64) bool {
	rrt := r.Mul3(r.Transpose())
	ident := mgl64.Ident3()
	for i := range rrt {
		if math.Abs(rrt[i]-ident[i]) > tolerance {
			return false
		}
	}
	return math.Abs(r.Det()-1) < tolerance
}

// AssertRotation verifies that r is a proper rotation matrix.
func AssertRotation(t *testing.T, r mgl64.Mat3, msgAndArgs ...any) bool {
	t.Helper()
	if !IsRotation(r, RotationTolerance) {
		return assert.Fail(t, "not a rotation",
			"R Rᵀ = %v, det = %v", r.Mul3(r.Transpose()), r.Det())
	}
	return true
}

// AssertSkewSymmetric verifies that m = -mᵀ.
func AssertSkewSymmetric(t *testing.T, m mgl64.Mat3, tolerance float64) bool {
	t.Helper()
	for row := range 3 {
		for col := range 3 {
			if !assert.InDelta(t, m.At(row, col), -m.At(col, row), tolerance,
				"m[%d,%d]=%f != -m[%d,%d]=%f", row, col, m.At(row, col), col, row, -m.At(col, row)) {
				return false
			}
		}
	}
	return true
}

// AssertVec3InDelta verifies that every component of actual is within
// tolerance of expected.
func AssertVec3InDelta(t *testing.T, expected, actual mgl64.Vec3, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := range 3 {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"component %d: got %v, want %v", i, actual, expected) {
			return false
		}
	}
	return true
}

// AssertConstantVec3 verifies that every component of v is within tolerance
// of value.
func AssertConstantVec3(t *testing.T, value float64, v mgl64.Vec3, tolerance float64) bool {
	t.Helper()
	return AssertVec3InDelta(t, mgl64.Vec3{value, value, value}, v, tolerance)
}

// AssertMat3InDelta verifies that every element of actual is within
// tolerance of expected.
func AssertMat3InDelta(t *testing.T, expected, actual mgl64.Mat3, tolerance float64) bool {
	t.Helper()
	for row := range 3 {
		for col := range 3 {
			if !assert.InDelta(t, expected.At(row, col), actual.At(row, col), tolerance,
				"element [%d,%d]: got %v, want %v", row, col, actual, expected) {
				return false
			}
		}
	}
	return true
}

// AssertFinite verifies that no component of v is NaN or Inf.
func AssertFinite(t *testing.T, v mgl64.Vec3) bool {
	t.Helper()
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return assert.Fail(t, "non-finite component", "v[%d] = %v", i, x)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
