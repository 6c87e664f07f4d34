package spline

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-trajectory-spline/internal/lie"
	"github.com/tphakala/go-trajectory-spline/internal/testutil"
)

// spiralKnots returns R_0 = I and R_i = R_{i-1} · Exp(i/10 · (1,1,1)).
func spiralKnots(n int) []mgl64.Mat3 {
	knots := make([]mgl64.Mat3, n)
	knots[0] = mgl64.Ident3()
	for i := 1; i < n; i++ {
		step := float64(i) / 10
		knots[i] = knots[i-1].Mul3(lie.Exp(mgl64.Vec3{step, step, step}))
	}
	return knots
}

func newSpiralSpline(t testing.TB, n int) *SO3Spline {
	t.Helper()

	s, err := NewSO3Spline(Config{StartTime: 100, KnotInterval: 5, Order: 4})
	require.NoError(t, err)
	for _, r := range spiralKnots(n) {
		s.AppendKnot(r)
	}
	return s
}

func TestSO3Spline_Evaluate(t *testing.T) {
	s := newSpiralSpline(t, 4)

	r, ok := s.Evaluate(100, Zero)
	require.True(t, ok)
	testutil.AssertRotation(t, r)
	assert.InDelta(t, 2.9593055, r.Trace(), 1e-7)
}

func TestSO3Spline_Velocity(t *testing.T) {
	s := newSpiralSpline(t, 4)

	tests := []struct {
		name string
		t    uint64
		want float64
	}{
		{"segment start", 100, 0.03},
		{"segment end", 104, 0.046},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.EvaluateVelocity(tt.t)
			require.True(t, ok)
			testutil.AssertConstantVec3(t, tt.want, got, 1e-12)
		})
	}
}

func TestSO3Spline_Acceleration(t *testing.T) {
	s := newSpiralSpline(t, 4)

	for _, ts := range []uint64{100, 104} {
		got, ok := s.EvaluateAcceleration(ts)
		require.True(t, ok, "t=%d", ts)
		testutil.AssertConstantVec3(t, 0.004, got, 1e-12)
	}
}

// TestSO3Spline_EvaluateDerivatives tests the matrix derivatives against the
// tangent space quantities they are built from.
func TestSO3Spline_EvaluateDerivatives(t *testing.T) {
	s := newSpiralSpline(t, 4)
	const ts = 102

	r, ok := s.Evaluate(ts, Zero)
	require.True(t, ok)
	omega, ok := s.EvaluateVelocity(ts)
	require.True(t, ok)
	alpha, ok := s.EvaluateAcceleration(ts)
	require.True(t, ok)

	first, ok := s.Evaluate(ts, First)
	require.True(t, ok)
	testutil.AssertMat3InDelta(t, r.Mul3(lie.Hat(omega)), first, 1e-14)

	// Ṙ = R·Hat(ω) implies Rᵀ·Ṙ is skew-symmetric.
	testutil.AssertSkewSymmetric(t, r.Transpose().Mul3(first), 1e-12)

	second, ok := s.Evaluate(ts, Second)
	require.True(t, ok)
	hat := lie.Hat(omega)
	testutil.AssertMat3InDelta(t, r.Mul3(hat.Mul3(hat).Add(lie.Hat(alpha))), second, 1e-14)
}

func TestSO3Spline_Gating(t *testing.T) {
	s := newSpiralSpline(t, 3)

	_, ok := s.Evaluate(100, Zero)
	assert.False(t, ok)
	_, ok = s.EvaluateVelocity(100)
	assert.False(t, ok)
	_, ok = s.EvaluateAcceleration(100)
	assert.False(t, ok)

	s.AppendKnot(s.Knot(2))
	_, ok = s.Evaluate(104, Zero)
	assert.True(t, ok)
	_, ok = s.Evaluate(105, Zero)
	assert.False(t, ok)
}

// TestSO3Spline_StaysOnManifold tests that every evaluated value across a
// long spline with varied increments is a rotation.
func TestSO3Spline_StaysOnManifold(t *testing.T) {
	s, err := NewSO3Spline(Config{StartTime: 0, KnotInterval: 1_000_000, Order: 4})
	require.NoError(t, err)

	r := mgl64.Ident3()
	for i := range 12 {
		s.AppendKnot(r)
		x := float64(i)
		r = r.Mul3(lie.Exp(mgl64.Vec3{0.3 * (x - 5) / 5, 0.2, -0.1 * x / 3}))
	}

	start, end, ok := s.EvaluableRange()
	require.True(t, ok)
	for ts := start; ts < end; ts += 137_003 {
		got, ok := s.Evaluate(ts, Zero)
		require.True(t, ok, "t=%d", ts)
		testutil.AssertRotation(t, got, "t=%d", ts)
	}
}

// TestSO3Spline_ContinuousAtKnots tests C² continuity across a segment
// boundary by comparing the last nanosecond of one segment with the first of
// the next.
func TestSO3Spline_ContinuousAtKnots(t *testing.T) {
	s, err := NewSO3Spline(Config{StartTime: 0, KnotInterval: 1_000_000, Order: 4})
	require.NoError(t, err)

	r := lie.Exp(mgl64.Vec3{0.1, -0.2, 0.3})
	for _, inc := range []mgl64.Vec3{{0.2, 0.1, 0}, {0, 0.3, -0.1}, {0.1, 0.1, 0.1}, {-0.2, 0, 0.2}} {
		s.AppendKnot(r)
		r = r.Mul3(lie.Exp(inc))
	}
	s.AppendKnot(r)

	const boundary = 1_000_000
	before, ok := s.Evaluate(boundary-1, Zero)
	require.True(t, ok)
	after, ok := s.Evaluate(boundary, Zero)
	require.True(t, ok)
	testutil.AssertMat3InDelta(t, before, after, 1e-5)

	vBefore, ok := s.EvaluateVelocity(boundary - 1)
	require.True(t, ok)
	vAfter, ok := s.EvaluateVelocity(boundary)
	require.True(t, ok)
	testutil.AssertVec3InDelta(t, vBefore, vAfter, 1e-11)
}

func TestSO3Spline_Preconditions(t *testing.T) {
	s := newSpiralSpline(t, 4)
	assert.Panics(t, func() { s.Evaluate(50, Zero) })
	assert.Panics(t, func() { s.EvaluateVelocity(50) })

	linear, err := NewSO3Spline(Config{KnotInterval: 5, Order: 2})
	require.NoError(t, err)
	assert.Panics(t, func() { linear.EvaluateAcceleration(0) })
	assert.Panics(t, func() { linear.Evaluate(0, Second) })

	constant, err := NewSO3Spline(Config{KnotInterval: 5, Order: 1})
	require.NoError(t, err)
	assert.Panics(t, func() { constant.EvaluateVelocity(0) })
}

func BenchmarkSO3Spline_Evaluate(b *testing.B) {
	s := newSpiralSpline(b, 4)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = s.Evaluate(102, Zero)
	}
}

func BenchmarkSO3Spline_EvaluateAcceleration(b *testing.B) {
	s := newSpiralSpline(b, 4)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = s.EvaluateAcceleration(102)
	}
}
