// Package config provides configuration types and defaults for lumascan.
package config

import (
	"fmt"

	"github.com/lumascan/lumascan/internal/util"
)

// Default constants
const (
	// DefaultPercentile is the percentile used when none is specified.
	DefaultPercentile float64 = 95

	// MinPercentile is the lowest valid percentile parameter.
	MinPercentile float64 = 0

	// MaxPercentile is the highest valid percentile parameter.
	MaxPercentile float64 = 100

	// DefaultPrecision is the number of fractional digits in the CSV export.
	DefaultPrecision int = 4

	// MaxPrecision is the largest supported CSV precision.
	MaxPrecision int = 10

	// DefaultGrayscale controls whether frames are reduced to luma before analysis.
	DefaultGrayscale bool = true
)

// Config holds all configuration for a batch analysis run.
// It is constructed once at startup and treated as read-only afterwards.
type Config struct {
	// Input/output paths
	InputDir  string
	OutputDir string // Defaults to InputDir
	LogDir    string

	// Percentile parameter in [0, 100], constant for the whole batch.
	Percentile float64

	// Recognized video file extensions.
	Extensions []string

	// Grayscale selects luma-only analysis. When false the percentile is
	// taken over all color channel samples of each frame.
	Grayscale bool

	// Precision is the number of fractional digits written to the CSV export.
	Precision int

	// Strict makes recorded per-file failures produce a non-zero exit status.
	Strict bool
}

// NewConfig creates a new Config with default values.
func NewConfig(inputDir, outputDir, logDir string) *Config {
	if outputDir == "" {
		outputDir = inputDir
	}
	return &Config{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		LogDir:     logDir,
		Percentile: DefaultPercentile,
		Extensions: append([]string(nil), util.DefaultVideoExtensions...),
		Grayscale:  DefaultGrayscale,
		Precision:  DefaultPrecision,
	}
}

// ExtensionSet returns the normalized extension lookup set.
func (c *Config) ExtensionSet() map[string]bool {
	return util.ExtensionSet(c.Extensions)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input folder is required", ErrMissingInput)
	}

	if c.Percentile < MinPercentile || c.Percentile > MaxPercentile ||
		c.Percentile != c.Percentile { // NaN check
		return fmt.Errorf("%w: must be %g-%g, got %v", ErrInvalidPercentile, MinPercentile, MaxPercentile, c.Percentile)
	}

	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: must be 0-%d, got %d", ErrInvalidPrecision, MaxPrecision, c.Precision)
	}

	if len(c.ExtensionSet()) == 0 {
		return fmt.Errorf("%w: extension filter matches nothing", ErrNoExtensions)
	}

	return nil
}
