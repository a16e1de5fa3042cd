// Package reporter provides progress reporting interfaces and implementations.
package reporter

import "time"

// HardwareSummary contains host information shown in the run header.
type HardwareSummary struct {
	Hostname string
	OS       string
	Arch     string
	NumCPU   int
}

// BatchStartInfo contains batch start metadata.
type BatchStartInfo struct {
	TotalFiles int
	FileList   []string
	OutputDir  string
	Percentile float64
}

// FileProgressContext contains current file index within a batch.
type FileProgressContext struct {
	CurrentFile int
	TotalFiles  int
}

// VideoSummary describes the current file before analysis.
type VideoSummary struct {
	InputFile   string
	Resolution  string
	Duration    string
	TotalFrames uint64
}

// ProgressSnapshot contains frame-loop progress information.
type ProgressSnapshot struct {
	CurrentFrame uint64
	TotalFrames  uint64
	Percent      float32
}

// ArtifactSummary contains the per-video analysis outcome.
type ArtifactSummary struct {
	InputFile string
	CSVFile   string
	PlotFile  string
	Frames    int
	Skipped   int
	MinValue  float64
	MaxValue  float64
	PeakFrame int
}

// ValidationSummary contains artifact validation results.
type ValidationSummary struct {
	Passed bool
	Steps  []ValidationStep
}

// ValidationStep represents a single validation check.
type ValidationStep struct {
	Name    string
	Passed  bool
	Details string
}

// ReporterError contains error information.
type ReporterError struct {
	Title      string
	Message    string
	Context    string
	Suggestion string
}

// FileFailure records one failed file and the reason.
type FileFailure struct {
	Filename string
	Reason   string
}

// BatchSummary contains batch completion information.
type BatchSummary struct {
	SuccessfulCount int
	FailedCount     int
	TotalFiles      int
	TotalFrames     uint64
	TotalDuration   time.Duration
	Failures        []FileFailure
}
