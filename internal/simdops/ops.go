// Package simdops routes the short vector kernels of spline evaluation to
// github.com/tphakala/simd. Knot windows hold at most a dozen entries, so only
// the reductions the kernels call are exposed.
package simdops

import (
	"fmt"

	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops is a table of float64 vector kernels. Each entry is bound once to the
// implementation selected for the running CPU.
type Ops struct {
	dot   func(a, b []float64) float64
	sum   func(a []float64) float64
	scale func(dst, a []float64, s float64)
}

var defaultOps = Ops{
	dot:   f64.DotProductUnsafe,
	sum:   f64.Sum,
	scale: f64.Scale,
}

// Default returns the kernels used by the spline evaluators.
func Default() *Ops {
	return &defaultOps
}

// Dot returns the dot product of a and b. It panics on a length mismatch
// instead of reading past the shorter slice.
func (o *Ops) Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("simdops: dot product of lengths %d and %d", len(a), len(b)))
	}
	return o.dot(a, b)
}

// Sum returns the sum of all elements.
func (o *Ops) Sum(a []float64) float64 {
	return o.sum(a)
}

// Scale stores a[i]*s in dst[i]. It panics if dst is shorter than a.
func (o *Ops) Scale(dst, a []float64, s float64) {
	if len(dst) < len(a) {
		panic(fmt.Sprintf("simdops: scale into %d elements from %d", len(dst), len(a)))
	}
	o.scale(dst, a, s)
}

// Dot is shorthand for Default().Dot.
func Dot(a, b []float64) float64 {
	return defaultOps.Dot(a, b)
}

// Info reports which instruction set the kernels dispatch to.
func Info() string {
	return cpu.Info()
}
