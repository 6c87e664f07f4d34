package mathutil

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TimePolynomial returns the length-k vector of shifted monomials used to
// evaluate the derivative-th derivative of a degree k-1 polynomial at u:
//
//	entry i = u^(i-derivative)  for i >= derivative
//	entry i = 0                 for i <  derivative
//
// The differentiation constants live in [PolynomialCoefficients]; the
// element-wise product of the two is the true derivative of the power basis
// (see [DerivativeVector]).
func TimePolynomial(k int, u float64, derivative int) []float64 {
	checkOrder(k, derivative)

	result := make([]float64, k)
	result[derivative] = 1
	for i := derivative + 1; i < k; i++ {
		result[i] = result[i-1] * u
	}
	return result
}

// PolynomialCoefficients returns the k×k matrix whose row r holds the
// constants produced by differentiating the monomials u^0..u^(k-1) r times.
//
// Row 0 is all ones and row i is built from row i-1 as
// coeff(i, j) = (j - (i-1)) * coeff(i-1, j), so for k=4:
//
//	1 1 1 1
//	0 1 2 3
//	0 0 2 6
//	0 0 0 6
func PolynomialCoefficients(k int) *mat.Dense {
	checkOrder(k, 0)

	coeffs := mat.NewDense(k, k, nil)
	for j := range k {
		coeffs.Set(0, j, constantCoeff)
	}

	for i := 1; i < k; i++ {
		for j := range k {
			coeffs.Set(i, j, float64(j-(i-1))*coeffs.At(i-1, j))
		}
	}

	return coeffs
}

// DerivativeVector returns coeffs[derivative, :] ⊙ TimePolynomial(k, u, derivative),
// the derivative-th derivative of the power basis (1, u, u², ...) with respect to u.
//
// At u=0 and k=4 this yields (1,0,0,0), (0,1,0,0) and (0,0,2,0) for the
// zeroth, first and second derivative.
func DerivativeVector(coeffs mat.Matrix, u float64, derivative int) []float64 {
	k, _ := coeffs.Dims()
	vec := TimePolynomial(k, u, derivative)
	for i := range vec {
		vec[i] *= coeffs.At(derivative, i)
	}
	return vec
}

// checkOrder panics when the order or derivative are out of range. Both are
// programmer errors: the caller fixes k at construction time and derivative
// comes from a closed enumeration.
func checkOrder(k, derivative int) {
	if k < minOrder {
		panic(fmt.Sprintf("mathutil: polynomial order %d must be at least %d", k, minOrder))
	}
	if derivative < 0 || derivative >= k {
		panic(fmt.Sprintf("mathutil: derivative %d out of range [0, %d)", derivative, k))
	}
}
