package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-trajectory-spline/internal/basis"
	"github.com/tphakala/go-trajectory-spline/internal/mathutil"
	"github.com/tphakala/go-trajectory-spline/internal/simdops"
	"gonum.org/v1/gonum/mat"
)

// Kernel combines the segment bookkeeping with the per-order basis. It is the
// single routine both spline types use to turn a timestamp into knot weights.
// A Kernel is immutable and safe for concurrent use.
type Kernel struct {
	TimeHandler

	basis *basis.Basis
	ops   *simdops.Ops
}

// NewKernel returns a Kernel for order k and the given knot timing.
func NewKernel(startTime, knotInterval uint64, order int) *Kernel {
	return &Kernel{
		TimeHandler: NewTimeHandler(startTime, knotInterval, order),
		basis:       basis.For(order),
		ops:         simdops.Default(),
	}
}

// Weights returns M · (coeffs[d,:] ⊙ TimePolynomial(k, u, d)) / Δt^d, where M
// is the blending matrix or, when cumulative is set, its cumulative form.
// The result has one entry per knot of the evaluation window.
// It panics if derivative is negative, above two, or not below the order.
func (k *Kernel) Weights(u float64, derivative int, cumulative bool) []float64 {
	if !k.Supports(derivative) {
		panic(fmt.Sprintf("engine: derivative %d unsupported for order %d", derivative, k.order))
	}

	m := k.basis.Blending
	if cumulative {
		m = k.basis.Cumulative
	}

	uvec := mat.NewVecDense(k.order, mathutil.DerivativeVector(k.basis.Coefficients, u, derivative))

	var blended mat.VecDense
	blended.MulVec(m, uvec)

	raw := blended.RawVector().Data
	if derivative == positionOrder {
		return raw
	}

	weights := make([]float64, k.order)
	k.ops.Scale(weights, raw, math.Pow(float64(k.knotInterval), -float64(derivative)))
	return weights
}

// Supports reports whether the derivative-th weights exist for this order.
// An order k spline is a polynomial of degree k-1, so its k-th derivative
// vanishes and only orders up to acceleration are exposed.
func (k *Kernel) Supports(derivative int) bool {
	return derivative >= positionOrder && derivative <= accelerationOrder && derivative < k.order
}
