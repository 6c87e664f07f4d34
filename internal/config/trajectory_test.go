package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spline "github.com/tphakala/go-trajectory-spline"
	"github.com/tphakala/go-trajectory-spline/target"
)

const validTrajectory = `
start_time_ns: 100
knot_interval_ns: 50
order: 4
knots:
  - {rotation: [0, 0, 0], translation: [0, 0, 0]}
  - {rotation: [0, 0, 0.1], translation: [1, 1, 1]}
  - {rotation: [0, 0, 0.2], translation: [2, 2, 2]}
  - {rotation: [0, 0, 0.3], translation: [3, 3, 3]}
  - {rotation: [0, 0, 0.4], translation: [4, 4, 4]}
sample:
  step_ns: 5
  workers: 2
target:
  type: checkerboard
  rows: 3
  cols: 4
  unit_dimension: 0.05
  pose: {rotation: [0, 0, 0], translation: [0, 0, 2]}
camera: {fx: 500, fy: 500, cx: 320, cy: 240, width: 640, height: 480}
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTrajectory(t *testing.T) {
	cfg, err := LoadTrajectory(writeConfig(t, "trajectory.yaml", validTrajectory))
	require.NoError(t, err)

	assert.Equal(t, spline.Config{StartTime: 100, KnotInterval: 50, Order: 4}, cfg.SplineConfig())
	require.Len(t, cfg.Knots, 5)
	assert.Equal(t, [3]float64{0, 0, 0.3}, cfg.Knots[3].Rotation)
	assert.Equal(t, spline.SampleOptions{Step: 5, Workers: 2}, cfg.SampleOptions())

	require.NotNil(t, cfg.Target)
	spec, err := cfg.Target.Spec()
	require.NoError(t, err)
	assert.Equal(t, target.Spec{Type: target.Checkerboard, Rows: 3, Cols: 4, UnitDimension: 0.05}, spec)

	require.NotNil(t, cfg.Camera)
	assert.Equal(t, 640, cfg.Camera.Pinhole().Width)
}

func TestTrajectory_Build(t *testing.T) {
	cfg, err := Parse([]byte(validTrajectory))
	require.NoError(t, err)

	s, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, s.NumKnots())

	start, end, ok := s.EvaluableRange()
	require.True(t, ok)
	assert.Equal(t, uint64(100), start)
	assert.Equal(t, uint64(200), end)

	pose, ok := s.Evaluate(150)
	require.True(t, ok)
	assert.InDelta(t, 2.0, pose.Translation[0], 1e-12)
	assert.InDelta(t, 0.2, pose.RotationVector()[2], 1e-12)
	assert.Equal(t, mgl64.Vec3{4, 4, 4}, s.Knot(4).Translation)
}

func TestLoadTrajectory_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"wrong extension", "trajectory.json", validTrajectory, "extension"},
		{"empty document", "empty.yaml", "", "empty"},
		{"unknown key", "typo.yaml", "knot_intervall_ns: 5\n", "failed to parse"},
		{"zero interval", "zero.yaml", "knot_interval_ns: 0\n", "knot interval"},
		{"bad order", "order.yaml", "knot_interval_ns: 5\norder: 40\n", "order"},
		{"short rotation", "short.yml", "knot_interval_ns: 5\nknots:\n  - {rotation: [1, 2]}\n", "failed to parse"},
		{"negative workers", "workers.yaml", "knot_interval_ns: 5\nsample: {workers: -2}\n", "workers"},
		{"unknown target", "target.yaml", "knot_interval_ns: 5\ntarget: {type: charuco}\n", "target"},
		{
			"target without camera", "nocam.yaml",
			"knot_interval_ns: 5\ntarget: {type: checkerboard, rows: 2, cols: 2, unit_dimension: 1}\n",
			"camera",
		},
		{
			"camera without size", "cam.yaml",
			"knot_interval_ns: 5\ncamera: {fx: 1, fy: 1}\n",
			"camera size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTrajectory(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTrajectory_MissingFile(t *testing.T) {
	_, err := LoadTrajectory(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to stat")
}

func TestLoadTrajectory_TooLarge(t *testing.T) {
	content := "knot_interval_ns: 5\n# " + strings.Repeat("x", maxFileSize) + "\n"
	_, err := LoadTrajectory(writeConfig(t, "large.yaml", content))
	assert.ErrorContains(t, err, "too large")
}

func TestSampleOptions_DefaultStep(t *testing.T) {
	cfg := Trajectory{KnotIntervalNanos: 1_000}
	assert.Equal(t, uint64(100), cfg.SampleOptions().Step)

	tiny := Trajectory{KnotIntervalNanos: 3}
	assert.Equal(t, uint64(1), tiny.SampleOptions().Step)

	assert.Equal(t, spline.DefaultOrder, cfg.SplineConfig().Order)
}
