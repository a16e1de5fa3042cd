// Package lumascan provides a Go library for per-frame pixel intensity
// percentile analysis of video files.
//
// Lumascan is an FFmpeg wrapper that decodes every frame of a video,
// reduces it to the pixel intensity value at a chosen percentile, and
// writes the resulting per-frame series as a CSV export and a plot image.
//
// Basic usage:
//
//	analyzer, err := lumascan.New(
//	    lumascan.WithPercentile(99),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := analyzer.AnalyzeFile(ctx, "input.mkv", "output/", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Analyzed %d frames, peak at frame %d\n",
//	    result.Frames, result.PeakFrame)
package lumascan

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lumascan/lumascan/internal/config"
	"github.com/lumascan/lumascan/internal/discovery"
	"github.com/lumascan/lumascan/internal/processing"
	"github.com/lumascan/lumascan/internal/reporter"
	"github.com/lumascan/lumascan/internal/util"
)

// Reporter receives progress events during analysis. See the reporter
// subpackage types for the event payloads.
type Reporter = reporter.Reporter

// DefaultPercentile is used when no percentile is configured.
const DefaultPercentile = config.DefaultPercentile

// ParsePercentile converts a percentile string to a float64 in [0, 100].
// Both integral ("95") and fractional ("99.5") forms are accepted.
func ParsePercentile(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentile %q: must be a number", s)
	}
	if p < config.MinPercentile || p > config.MaxPercentile || p != p {
		return 0, fmt.Errorf("invalid percentile %v: must be %g-%g",
			p, config.MinPercentile, config.MaxPercentile)
	}
	return p, nil
}

// Analyzer is the main entry point for video analysis.
type Analyzer struct {
	config *config.Config
}

// Result contains the outcome for a single analyzed file.
type Result struct {
	CSVFile          string
	PlotFile         string
	Frames           int
	Skipped          int
	MinValue         float64
	MaxValue         float64
	PeakFrame        int
	ValidationPassed bool
}

// BatchResult contains the outcome of a batch analysis.
type BatchResult struct {
	Results         []Result
	SuccessfulCount int
	FailedCount     int
	TotalFiles      int
}

// Option configures the analyzer.
type Option func(*config.Config)

// New creates a new Analyzer with the given options.
func New(opts ...Option) (*Analyzer, error) {
	cfg := config.NewConfig(".", ".", ".")

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Analyzer{config: cfg}, nil
}

// WithPercentile sets the percentile parameter in [0, 100].
func WithPercentile(p float64) Option {
	return func(c *config.Config) {
		c.Percentile = p
	}
}

// WithGrayscale controls luma-only analysis. When disabled the percentile
// is taken over all color channel samples of each frame.
func WithGrayscale(enable bool) Option {
	return func(c *config.Config) {
		c.Grayscale = enable
	}
}

// WithExtensions replaces the recognized video file extensions.
func WithExtensions(extensions []string) Option {
	return func(c *config.Config) {
		c.Extensions = append([]string(nil), extensions...)
	}
}

// WithPrecision sets the number of fractional digits in the CSV export.
func WithPrecision(digits int) Option {
	return func(c *config.Config) {
		c.Precision = digits
	}
}

// AnalyzeFile analyzes a single video file and writes its artifacts to
// outputDir. A nil Reporter silences progress output.
func (a *Analyzer) AnalyzeFile(ctx context.Context, input, outputDir string, rep Reporter) (*Result, error) {
	batch, err := a.analyze(ctx, []string{input}, outputDir, rep)
	if err != nil {
		return nil, err
	}
	if len(batch.Results) == 0 {
		return nil, fmt.Errorf("analysis of %s failed", util.GetFilename(input))
	}
	result := batch.Results[0]
	return &result, nil
}

// AnalyzeDir discovers video files in inputDir and analyzes all of them.
// Per-file failures are counted in the batch result rather than returned
// as an error.
func (a *Analyzer) AnalyzeDir(ctx context.Context, inputDir, outputDir string, rep Reporter) (*BatchResult, error) {
	files, err := discovery.FindVideoFiles(inputDir, a.config.ExtensionSet())
	if err != nil {
		return nil, err
	}
	return a.analyze(ctx, files, outputDir, rep)
}

func (a *Analyzer) analyze(ctx context.Context, inputs []string, outputDir string, rep Reporter) (*BatchResult, error) {
	cfg := *a.config
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	if err := util.EnsureDirectory(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if rep == nil {
		rep = reporter.NullReporter{}
	}

	results, failures := processing.ProcessVideos(ctx, &cfg, inputs, rep, nil)

	batch := &BatchResult{
		SuccessfulCount: len(results),
		FailedCount:     len(failures),
		TotalFiles:      len(inputs),
	}
	for _, r := range results {
		batch.Results = append(batch.Results, Result{
			CSVFile:          r.CSVPath,
			PlotFile:         r.PlotPath,
			Frames:           r.Frames,
			Skipped:          r.Skipped,
			MinValue:         r.MinValue,
			MaxValue:         r.MaxValue,
			PeakFrame:        r.PeakFrame,
			ValidationPassed: r.ValidationPassed,
		})
	}
	return batch, nil
}

// FindVideos finds video files in a directory using the default extension set.
func FindVideos(dir string) ([]string, error) {
	return discovery.FindVideoFiles(dir, util.ExtensionSet(util.DefaultVideoExtensions))
}
