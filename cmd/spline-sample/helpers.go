package main

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"io"
	"strconv"

	spline "github.com/tphakala/go-trajectory-spline"
	"github.com/tphakala/go-trajectory-spline/internal/config"
	"github.com/tphakala/go-trajectory-spline/target"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var csvHeader = []string{
	"time_ns",
	"px", "py", "pz",
	"qw", "qx", "qy", "qz",
	"vx", "vy", "vz",
	"wx", "wy", "wz",
}

// visibleHeader is appended to csvHeader when a target is configured.
const visibleHeader = "visible_points"

// visibleCounts projects the configured target into the camera at every
// sample, treating each sample pose as the camera pose in the world. It
// returns nil when no target is configured.
func visibleCounts(traj *config.Trajectory, samples []spline.TrajectorySample) ([]int, error) {
	if traj.Target == nil || traj.Camera == nil {
		return nil, nil
	}

	spec, err := traj.Target.Spec()
	if err != nil {
		return nil, err
	}
	board, err := target.Layout(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out target: %w", err)
	}

	cam := traj.Camera.Pinhole()
	worldFromBoard := traj.Target.Pose.Pose()

	counts := make([]int, len(samples))
	for i := range samples {
		cameraFromBoard := samples[i].Pose.Inverse().Compose(worldFromBoard)
		frame, ok := board.Project(cam, cameraFromBoard.Matrix())
		if ok {
			counts[i] = frame.Len()
		}
	}
	return counts, nil
}

// writeCSV writes one row per sample. visible is either nil or holds one
// count per sample.
func writeCSV(w io.Writer, samples []spline.TrajectorySample, visible []int) error {
	if visible != nil && len(visible) != len(samples) {
		return fmt.Errorf("visible counts length %d does not match %d samples", len(visible), len(samples))
	}

	cw := csv.NewWriter(w)

	header := csvHeader
	if visible != nil {
		header = append(append([]string(nil), csvHeader...), visibleHeader)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, 0, len(header))
	for i := range samples {
		s := &samples[i]
		q := s.Pose.Quaternion()

		row = row[:0]
		row = append(row, strconv.FormatUint(s.Time, 10))
		row = appendFloats(row, s.Pose.Translation[:]...)
		row = appendFloats(row, q.Real, q.Imag, q.Jmag, q.Kmag)
		row = appendFloats(row, s.LinearVelocity[:]...)
		row = appendFloats(row, s.AngularVelocity[:]...)
		if visible != nil {
			row = append(row, strconv.Itoa(visible[i]))
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func appendFloats(dst []string, values ...float64) []string {
	for _, v := range values {
		dst = append(dst, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return dst
}

// axisColors are used for the x, y and z translation lines.
var axisColors = []color.Color{
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
}

// savePlot draws the translation of every sample against time in seconds.
func savePlot(path string, samples []spline.TrajectorySample) error {
	if len(samples) == 0 {
		return fmt.Errorf("no samples to plot")
	}

	p := plot.New()
	p.Title.Text = "Trajectory translation"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Position"

	for axis, name := range []string{"x", "y", "z"} {
		pts := make(plotter.XYs, len(samples))
		for i := range samples {
			pts[i] = plotter.XY{
				X: float64(samples[i].Time) / nanosPerSecond,
				Y: samples[i].Pose.Translation[axis],
			}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to create %s line: %w", name, err)
		}
		line.Color = axisColors[axis]
		line.Width = vg.Points(plotLineWidth)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
