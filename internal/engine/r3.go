package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tphakala/go-trajectory-spline/internal/simdops"
)

// BlendR3 returns Σ_j weights[j] · window[j], the weighted sum of the knots
// in an evaluation window. Each dimension is reduced with one SIMD dot product.
func BlendR3(window []mgl64.Vec3, weights []float64) mgl64.Vec3 {
	if len(window) != len(weights) {
		panic(fmt.Sprintf("engine: window of %d knots for %d weights", len(window), len(weights)))
	}

	column := make([]float64, len(window))
	var result mgl64.Vec3
	for dim := range dims {
		for j, knot := range window {
			column[j] = knot[dim]
		}
		result[dim] = simdops.Dot(column, weights)
	}
	return result
}
