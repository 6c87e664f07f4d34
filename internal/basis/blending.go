// Package basis builds the matrix representation of uniform B-splines: the
// blending matrix that maps the power basis of the local segment time u onto
// control point weights, and its cumulative form used by Lie-group splines.
//
// Reference: Qin, "General matrix representations for B-splines", and
// Sommer et al., "Efficient Derivative Computation for Cumulative B-Splines
// on Lie Groups".
package basis

import (
	"math"

	"github.com/tphakala/go-trajectory-spline/internal/mathutil"
	"gonum.org/v1/gonum/mat"
)

// BlendingMatrix returns the k×k basis-change matrix M of a uniform B-spline
// of order k (degree k-1). Row s is the control point offset within the
// segment, column n the power of u:
//
//	M(s,n) = C(k-1,n) / (k-1)! * Σ_{l=s}^{k-1} (-1)^(l-s) C(k,l-s) (k-1-l)^(k-1-n)
//
// For k=4 this is the familiar cubic matrix
//
//	1/6 * [ 1 -3  3 -1 ]
//	      [ 4  0 -6  3 ]
//	      [ 1  3  3 -3 ]
//	      [ 0  0  0  1 ]
func BlendingMatrix(k int) *mat.Dense {
	m := mat.NewDense(k, k, nil)

	for s := range k {
		for n := range k {
			var sum float64
			for l := s; l < k; l++ {
				sign := 1.0
				if (l-s)%2 == 1 {
					sign = -1.0
				}
				sum += sign * float64(mathutil.BinomialCoefficient(k, l-s)) *
					math.Pow(float64(k-1-l), float64(k-1-n))
			}
			m.Set(s, n, float64(mathutil.BinomialCoefficient(k-1, n))*sum)
		}
	}

	m.Scale(1/float64(mathutil.Factorial(k-1)), m)
	return m
}

// CumulativeBlendingMatrix returns the k×k matrix whose entry (s,n) is the
// sum of BlendingMatrix(k) column n from row s to the bottom. Row 0 is always
// (1, 0, ..., 0) because the uniform B-spline weights form a partition of
// unity.
func CumulativeBlendingMatrix(k int) *mat.Dense {
	blending := BlendingMatrix(k)
	cumulative := mat.NewDense(k, k, nil)

	for n := range k {
		var sum float64
		for s := k - 1; s >= 0; s-- {
			sum += blending.At(s, n)
			cumulative.Set(s, n, sum)
		}
	}

	return cumulative
}
