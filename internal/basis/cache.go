package basis

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-trajectory-spline/internal/mathutil"
	"gonum.org/v1/gonum/mat"
)

// Basis bundles the matrices that depend only on the spline order. A Basis
// returned by [For] is shared by every spline of the same order and must be
// treated as read-only.
type Basis struct {
	// Order is the spline order k (degree k-1).
	Order int

	// Blending maps the derivative vector onto control point weights.
	Blending *mat.Dense

	// Cumulative maps the derivative vector onto cumulative weights.
	Cumulative *mat.Dense

	// Coefficients holds the power-basis differentiation constants.
	Coefficients *mat.Dense
}

// cache memoizes Basis values by order.
var cache = struct {
	mu     sync.RWMutex
	bases  map[int]*Basis
	builds int
}{
	bases: make(map[int]*Basis),
}

// For returns the shared Basis for order k, building it on first use.
// Safe for concurrent use.
func For(k int) *Basis {
	if k < 1 || k > MaxOrder {
		panic(fmt.Sprintf("basis: order %d out of range [1, %d]", k, MaxOrder))
	}

	cache.mu.RLock()
	b, ok := cache.bases[k]
	cache.mu.RUnlock()
	if ok {
		return b
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	// Another goroutine may have won the race while we waited for the lock.
	if b, ok = cache.bases[k]; ok {
		return b
	}

	b = &Basis{
		Order:        k,
		Blending:     BlendingMatrix(k),
		Cumulative:   CumulativeBlendingMatrix(k),
		Coefficients: mathutil.PolynomialCoefficients(k),
	}
	cache.bases[k] = b
	cache.builds++

	return b
}
