// Package mathutil provides the scalar building blocks of the uniform B-spline
// matrix representation: factorials, binomial coefficients and the time
// polynomial vectors that get multiplied against the blending matrix.
package mathutil

import "fmt"

// Factorial returns n! computed exactly in integer arithmetic.
//
// The spline order stays small (4 for a cubic spline) so the naive product is
// both exact and fast. Panics if n exceeds 20, the largest argument whose
// factorial fits in a uint64.
func Factorial(n int) uint64 {
	if n < 0 || n > maxFactorialArg {
		panic(fmt.Sprintf("mathutil: factorial argument %d out of range [0, %d]", n, maxFactorialArg))
	}

	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f
}

// BinomialCoefficient returns C(n, k) = n! / (k! (n-k)!).
//
// Returns 0 when k is outside [0, n], which lets the blending matrix sums run
// over the full index range without special-casing the borders.
func BinomialCoefficient(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	return Factorial(n) / (Factorial(k) * Factorial(n-k))
}
