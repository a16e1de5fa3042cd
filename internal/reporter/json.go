package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// JSONReporter outputs NDJSON events for machine consumption.
type JSONReporter struct {
	writer             io.Writer
	mu                 sync.Mutex
	lastProgressBucket int
}

// NewJSONReporter creates a new JSON reporter that writes to stdout.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{writer: os.Stdout, lastProgressBucket: -1}
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w, lastProgressBucket: -1}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(v map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) Hardware(summary HardwareSummary) {
	r.write(map[string]interface{}{
		"type":      "hardware",
		"hostname":  summary.Hostname,
		"os":        summary.OS,
		"arch":      summary.Arch,
		"num_cpu":   summary.NumCPU,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) BatchStarted(info BatchStartInfo) {
	r.write(map[string]interface{}{
		"type":        "batch_started",
		"total_files": info.TotalFiles,
		"file_list":   info.FileList,
		"output_dir":  info.OutputDir,
		"percentile":  info.Percentile,
		"timestamp":   r.timestamp(),
	})
}

func (r *JSONReporter) FileProgress(context FileProgressContext) {
	r.write(map[string]interface{}{
		"type":         "file_progress",
		"current_file": context.CurrentFile,
		"total_files":  context.TotalFiles,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) VideoInfo(summary VideoSummary) {
	r.write(map[string]interface{}{
		"type":         "video_info",
		"input_file":   summary.InputFile,
		"resolution":   summary.Resolution,
		"duration":     summary.Duration,
		"total_frames": summary.TotalFrames,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) AnalysisStarted(totalFrames uint64) {
	r.mu.Lock()
	r.lastProgressBucket = -1
	r.mu.Unlock()
	r.write(map[string]interface{}{
		"type":         "analysis_started",
		"total_frames": totalFrames,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) AnalysisProgress(progress ProgressSnapshot) {
	// Frame-level events would flood the stream; only emit whole percents.
	if progress.TotalFrames == 0 {
		return
	}
	bucket := int(progress.Percent)
	r.mu.Lock()
	if bucket == r.lastProgressBucket {
		r.mu.Unlock()
		return
	}
	r.lastProgressBucket = bucket
	r.mu.Unlock()
	r.write(map[string]interface{}{
		"type":          "analysis_progress",
		"current_frame": progress.CurrentFrame,
		"total_frames":  progress.TotalFrames,
		"percent":       progress.Percent,
		"timestamp":     r.timestamp(),
	})
}

func (r *JSONReporter) ArtifactsWritten(summary ArtifactSummary) {
	r.write(map[string]interface{}{
		"type":       "artifacts_written",
		"input_file": summary.InputFile,
		"csv_file":   summary.CSVFile,
		"plot_file":  summary.PlotFile,
		"frames":     summary.Frames,
		"skipped":    summary.Skipped,
		"min_value":  summary.MinValue,
		"max_value":  summary.MaxValue,
		"peak_frame": summary.PeakFrame,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) ValidationComplete(summary ValidationSummary) {
	steps := make([]map[string]interface{}, len(summary.Steps))
	for i, step := range summary.Steps {
		steps[i] = map[string]interface{}{
			"step":    step.Name,
			"passed":  step.Passed,
			"details": step.Details,
		}
	}
	r.write(map[string]interface{}{
		"type":      "validation_complete",
		"passed":    summary.Passed,
		"steps":     steps,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":      "warning",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Error(e ReporterError) {
	r.write(map[string]interface{}{
		"type":       "error",
		"title":      e.Title,
		"message":    e.Message,
		"context":    e.Context,
		"suggestion": e.Suggestion,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) BatchComplete(summary BatchSummary) {
	failures := make([]map[string]interface{}, len(summary.Failures))
	for i, failure := range summary.Failures {
		failures[i] = map[string]interface{}{
			"filename": failure.Filename,
			"reason":   failure.Reason,
		}
	}
	r.write(map[string]interface{}{
		"type":             "batch_complete",
		"successful_count": summary.SuccessfulCount,
		"failed_count":     summary.FailedCount,
		"total_files":      summary.TotalFiles,
		"total_frames":     summary.TotalFrames,
		"elapsed_secs":     summary.TotalDuration.Seconds(),
		"failures":         failures,
		"timestamp":        r.timestamp(),
	})
}
