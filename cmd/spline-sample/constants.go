package main

import "gonum.org/v1/plot/vg"

// Default command-line flag values
const (
	defaultWorkers = -1 // keep the value from the config file
)

// Plot geometry
const (
	plotWidth     = 10 * vg.Inch
	plotHeight    = 5 * vg.Inch
	plotLineWidth = 1 // points
)

// nanosPerSecond converts sample timestamps to seconds on the plot axis.
const nanosPerSecond = 1e9
