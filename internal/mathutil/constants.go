package mathutil

// Polynomial basis constants
const (
	// minOrder is the smallest polynomial order (number of coefficients) that
	// describes a curve: a single constant term.
	minOrder = 1

	// maxFactorialArg is the largest n for which n! fits in a uint64.
	maxFactorialArg = 20
)

// Coefficient matrix constants
const (
	constantCoeff = 1.0 // Every monomial u^j has coefficient 1 before differentiation
)
