// Package config loads trajectory descriptions from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	spline "github.com/tphakala/go-trajectory-spline"
	"github.com/tphakala/go-trajectory-spline/target"
	"gopkg.in/yaml.v3"
)

// Trajectory is the root of a trajectory file.
type Trajectory struct {
	StartTimeNanos    uint64        `yaml:"start_time_ns"`
	KnotIntervalNanos uint64        `yaml:"knot_interval_ns"`
	Order             int           `yaml:"order"`
	Knots             []Knot        `yaml:"knots"`
	Sample            SampleConfig  `yaml:"sample"`
	Target            *TargetConfig `yaml:"target,omitempty"`
	Camera            *CameraConfig `yaml:"camera,omitempty"`
}

// Knot is one control pose: a rotation vector in radians and a translation.
type Knot struct {
	Rotation    [3]float64 `yaml:"rotation"`
	Translation [3]float64 `yaml:"translation"`
}

// SampleConfig controls sampling of the loaded spline.
type SampleConfig struct {
	StepNanos uint64 `yaml:"step_ns"`
	Workers   int    `yaml:"workers"`
}

// TargetConfig describes a calibration board placed in the world.
type TargetConfig struct {
	Type          string  `yaml:"type"`
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	UnitDimension float64 `yaml:"unit_dimension"`
	Asymmetric    bool    `yaml:"asymmetric"`
	Pose          Knot    `yaml:"pose"`
}

// CameraConfig holds pinhole intrinsics in pixels.
type CameraConfig struct {
	Fx     float64 `yaml:"fx"`
	Fy     float64 `yaml:"fy"`
	Cx     float64 `yaml:"cx"`
	Cy     float64 `yaml:"cy"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// LoadTrajectory loads a Trajectory from a YAML file.
// The file must have a .yaml or .yml extension and be at most 1MB.
func LoadTrajectory(path string) (*Trajectory, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a trajectory document. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func Parse(data []byte) (*Trajectory, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Trajectory
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("config file is empty")
		}
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration values are valid.
func (t *Trajectory) Validate() error {
	splineCfg := t.SplineConfig()
	if err := splineCfg.Validate(); err != nil {
		return err
	}

	if t.Sample.Workers < 0 {
		return fmt.Errorf("sample.workers must be non-negative, got %d", t.Sample.Workers)
	}

	if t.Target != nil {
		if _, err := t.Target.Spec(); err != nil {
			return fmt.Errorf("target: %w", err)
		}
		if t.Camera == nil {
			return errors.New("target requires camera intrinsics")
		}
	}

	if t.Camera != nil {
		if t.Camera.Fx <= 0 || t.Camera.Fy <= 0 {
			return fmt.Errorf("camera focal lengths must be positive, got fx=%v fy=%v", t.Camera.Fx, t.Camera.Fy)
		}
		if t.Camera.Width <= 0 || t.Camera.Height <= 0 {
			return fmt.Errorf("camera size must be positive, got %dx%d", t.Camera.Width, t.Camera.Height)
		}
	}

	return nil
}

// SplineConfig returns the spline timing. A zero order selects the default.
func (t *Trajectory) SplineConfig() spline.Config {
	order := t.Order
	if order == 0 {
		order = spline.DefaultOrder
	}
	return spline.Config{
		StartTime:    t.StartTimeNanos,
		KnotInterval: t.KnotIntervalNanos,
		Order:        order,
	}
}

// Build creates the pose spline and appends every knot.
func (t *Trajectory) Build() (*spline.SE3Spline, error) {
	s, err := spline.NewSE3Spline(t.SplineConfig())
	if err != nil {
		return nil, err
	}
	for _, k := range t.Knots {
		s.AddKnot(k.Pose())
	}
	return s, nil
}

// SampleOptions returns the sampling options, defaulting the step to a tenth
// of the knot interval.
func (t *Trajectory) SampleOptions() spline.SampleOptions {
	step := t.Sample.StepNanos
	if step == 0 {
		step = max(t.KnotIntervalNanos/defaultSamplesPerKnot, 1)
	}
	return spline.SampleOptions{Step: step, Workers: t.Sample.Workers}
}

// Pose converts the knot into a spline pose.
func (k Knot) Pose() spline.Pose {
	return spline.NewPose(mgl64.Vec3(k.Rotation), mgl64.Vec3(k.Translation))
}

// Spec converts the target section into a board description.
func (c *TargetConfig) Spec() (target.Spec, error) {
	typ, err := target.ParseType(c.Type)
	if err != nil {
		return target.Spec{}, err
	}
	spec := target.Spec{
		Type:          typ,
		Rows:          c.Rows,
		Cols:          c.Cols,
		UnitDimension: c.UnitDimension,
		Asymmetric:    c.Asymmetric,
	}
	return spec, spec.Validate()
}

// Pinhole converts the camera section into a camera model.
func (c *CameraConfig) Pinhole() target.Pinhole {
	return target.Pinhole{
		Fx: c.Fx, Fy: c.Fy,
		Cx: c.Cx, Cy: c.Cy,
		Width:  c.Width,
		Height: c.Height,
	}
}
