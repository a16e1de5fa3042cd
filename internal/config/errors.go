// Package config provides configuration types and defaults for lumascan.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrMissingInput indicates no input folder was provided.
	ErrMissingInput = errors.New("missing input folder")

	// ErrInvalidPercentile indicates a percentile outside the valid 0-100 range.
	ErrInvalidPercentile = errors.New("percentile out of range")

	// ErrInvalidPrecision indicates an unsupported CSV precision value.
	ErrInvalidPrecision = errors.New("precision out of range")

	// ErrNoExtensions indicates an empty video extension filter.
	ErrNoExtensions = errors.New("invalid extension filter")
)
