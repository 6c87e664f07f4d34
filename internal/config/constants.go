package config

// File limits
const (
	maxFileSize = 1 * 1024 * 1024 // 1MB
)

// Sampling defaults
const (
	defaultSamplesPerKnot = 10 // Used when sample.step_ns is omitted
)
