package basis

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-trajectory-spline/internal/testutil"
	"gonum.org/v1/gonum/mat"
)

const basisTolerance = 1e-12

// TestBlendingMatrix_Cubic tests the k=4 matrix against the closed form.
func TestBlendingMatrix_Cubic(t *testing.T) {
	expected := mat.NewDense(4, 4, []float64{
		1, -3, 3, -1,
		4, 0, -6, 3,
		1, 3, 3, -3,
		0, 0, 0, 1,
	})
	expected.Scale(1.0/6.0, expected)

	m := BlendingMatrix(4)
	assert.True(t, mat.EqualApprox(expected, m, basisTolerance),
		"BlendingMatrix(4) =\n%v", mat.Formatted(m))
}

// TestBlendingMatrix_FrobeniusNorm tests the regression value for k=4.
func TestBlendingMatrix_FrobeniusNorm(t *testing.T) {
	testutil.AssertRelativeError(t, 1.7480147, mat.Norm(BlendingMatrix(4), 2), testutil.LooseTolerance)
}

// TestBlendingMatrix_Linear tests the k=2 matrix (linear interpolation).
func TestBlendingMatrix_Linear(t *testing.T) {
	expected := mat.NewDense(2, 2, []float64{
		1, -1,
		0, 1,
	})
	assert.True(t, mat.EqualApprox(expected, BlendingMatrix(2), basisTolerance))
}

// TestBlendingMatrix_PartitionOfUnity tests that the weights for the constant
// term sum to one and every higher power sums to zero, for several orders.
func TestBlendingMatrix_PartitionOfUnity(t *testing.T) {
	for k := 1; k <= 8; k++ {
		m := BlendingMatrix(k)
		for n := range k {
			var sum float64
			for s := range k {
				sum += m.At(s, n)
			}
			want := 0.0
			if n == 0 {
				want = 1.0
			}
			assert.InDelta(t, want, sum, 1e-9, "k=%d column %d", k, n)
		}
	}
}

// TestCumulativeBlendingMatrix_Cubic tests the k=4 cumulative matrix.
func TestCumulativeBlendingMatrix_Cubic(t *testing.T) {
	expected := mat.NewDense(4, 4, []float64{
		6, 0, 0, 0,
		5, 3, -3, 1,
		1, 3, 3, -2,
		0, 0, 0, 1,
	})
	expected.Scale(1.0/6.0, expected)

	c := CumulativeBlendingMatrix(4)
	assert.True(t, mat.EqualApprox(expected, c, basisTolerance),
		"CumulativeBlendingMatrix(4) =\n%v", mat.Formatted(c))
}

// TestCumulativeBlendingMatrix_FirstRow tests that row 0 is (1, 0, ..., 0).
func TestCumulativeBlendingMatrix_FirstRow(t *testing.T) {
	for k := 1; k <= 8; k++ {
		c := CumulativeBlendingMatrix(k)
		for n := range k {
			want := 0.0
			if n == 0 {
				want = 1.0
			}
			assert.InDelta(t, want, c.At(0, n), 1e-9, "k=%d column %d", k, n)
		}
	}
}

// TestFor_Memoized tests that repeated lookups share one Basis.
func TestFor_Memoized(t *testing.T) {
	first := For(5)
	second := For(5)
	require.Same(t, first, second)
	assert.Equal(t, 5, first.Order)

	r, c := first.Blending.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)
}

// TestFor_ConcurrentFirstUse tests that racing first lookups build once.
func TestFor_ConcurrentFirstUse(t *testing.T) {
	const order = 7
	const goroutines = 16

	cache.mu.RLock()
	_, alreadyBuilt := cache.bases[order]
	before := cache.builds
	cache.mu.RUnlock()

	results := make([]*Basis, goroutines)
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = For(order)
		}(i)
	}
	wg.Wait()

	for _, b := range results {
		assert.Same(t, results[0], b)
	}

	cache.mu.RLock()
	after := cache.builds
	cache.mu.RUnlock()

	wantBuilds := 1
	if alreadyBuilt {
		wantBuilds = 0
	}
	assert.Equal(t, wantBuilds, after-before)
}

// TestFor_InvalidOrder tests that unsupported orders panic.
func TestFor_InvalidOrder(t *testing.T) {
	assert.Panics(t, func() { For(0) })
	assert.Panics(t, func() { For(MaxOrder + 1) })
}

// BenchmarkFor benchmarks the cached lookup path.
func BenchmarkFor(b *testing.B) {
	For(4)
	for b.Loop() {
		_ = For(4)
	}
}
