// Package processing orchestrates batch analysis over a list of video files.
package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/lumascan/lumascan/internal/analyze"
	"github.com/lumascan/lumascan/internal/config"
	errs "github.com/lumascan/lumascan/internal/errors"
	"github.com/lumascan/lumascan/internal/ffprobe"
	"github.com/lumascan/lumascan/internal/logging"
	"github.com/lumascan/lumascan/internal/output"
	"github.com/lumascan/lumascan/internal/reporter"
	"github.com/lumascan/lumascan/internal/util"
	"github.com/lumascan/lumascan/internal/validation"
)

// Result contains the outcome of a single successfully analyzed file.
type Result struct {
	Filename         string
	Frames           int
	Skipped          int
	Duration         time.Duration
	CSVPath          string
	PlotPath         string
	MinValue         float64
	MaxValue         float64
	PeakFrame        int
	ValidationPassed bool
}

// Failure records one file whose analysis was abandoned.
type Failure struct {
	Filename string
	Err      error
}

// Seams for tests; production code never swaps these.
var (
	probeVideo   = ffprobe.Probe
	analyzeVideo = analyze.Video
)

// ProcessVideos analyzes each file in order. A failing file is recorded and
// the batch moves on; only cancellation stops the loop early. The returned
// failures list is never nil-checked by callers, empty means a clean batch.
func ProcessVideos(
	ctx context.Context,
	cfg *config.Config,
	filesToProcess []string,
	rep reporter.Reporter,
	logger *logging.Logger,
) ([]Result, []Failure) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	batchStart := time.Now()

	sysInfo := util.GetSystemInfo()
	rep.Hardware(reporter.HardwareSummary{
		Hostname: sysInfo.Hostname,
		OS:       sysInfo.OS,
		Arch:     sysInfo.Arch,
		NumCPU:   sysInfo.NumCPU,
	})

	var fileNames []string
	for _, f := range filesToProcess {
		fileNames = append(fileNames, util.GetFilename(f))
	}
	rep.BatchStarted(reporter.BatchStartInfo{
		TotalFiles: len(filesToProcess),
		FileList:   fileNames,
		OutputDir:  cfg.OutputDir,
		Percentile: cfg.Percentile,
	})
	logger.Info("Starting batch: %d file(s), percentile %s, output %s",
		len(filesToProcess), util.FormatPercentile(cfg.Percentile), cfg.OutputDir)

	var results []Result
	var failures []Failure
	var totalFrames uint64

	for fileIdx, inputPath := range filesToProcess {
		if ctx.Err() != nil {
			rep.Warning(fmt.Sprintf("Analysis cancelled: %v", ctx.Err()))
			logger.Warn("Batch cancelled after %d of %d files", fileIdx, len(filesToProcess))
			break
		}

		fileStartTime := time.Now()
		inputFilename := util.GetFilename(inputPath)

		if len(filesToProcess) > 1 {
			rep.FileProgress(reporter.FileProgressContext{
				CurrentFile: fileIdx + 1,
				TotalFiles:  len(filesToProcess),
			})
		}
		logger.Info("[%d/%d] %s", fileIdx+1, len(filesToProcess), inputFilename)

		info, err := probeVideo(ctx, inputPath)
		if err != nil {
			if errs.IsCancelled(err) {
				rep.Warning(fmt.Sprintf("Analysis cancelled: %v", ctx.Err()))
				logger.Warn("Batch cancelled while probing %s", inputFilename)
				break
			}
			rep.Error(reporter.ReporterError{
				Title:      "Probe Error",
				Message:    fmt.Sprintf("Could not probe %s: %v", inputFilename, err),
				Context:    fmt.Sprintf("File: %s", inputPath),
				Suggestion: "Check if the file is a valid video and ffprobe is installed",
			})
			logger.Error("Probe failed for %s: %v", inputFilename, err)
			failures = append(failures, Failure{Filename: inputFilename, Err: err})
			continue
		}

		rep.VideoInfo(reporter.VideoSummary{
			InputFile:   inputFilename,
			Resolution:  fmt.Sprintf("%dx%d", info.Width, info.Height),
			Duration:    util.FormatDuration(info.DurationSecs),
			TotalFrames: info.TotalFrames,
		})
		logger.Debug("Probed %s: %dx%d, %.2fs, ~%d frames",
			inputFilename, info.Width, info.Height, info.DurationSecs, info.TotalFrames)

		rep.AnalysisStarted(info.TotalFrames)

		series, err := analyzeVideo(ctx, inputPath, info, cfg.Percentile, cfg.Grayscale, func(framesDone int) {
			snapshot := reporter.ProgressSnapshot{
				CurrentFrame: uint64(framesDone),
				TotalFrames:  info.TotalFrames,
			}
			if info.TotalFrames > 0 {
				snapshot.Percent = float32(framesDone) / float32(info.TotalFrames) * 100
			}
			rep.AnalysisProgress(snapshot)
		})
		if err != nil {
			if errs.IsCancelled(err) {
				rep.Warning(fmt.Sprintf("Analysis cancelled: %v", ctx.Err()))
				logger.Warn("Batch cancelled while analyzing %s", inputFilename)
				break
			}
			rep.Error(reporter.ReporterError{
				Title:      "Decode Error",
				Message:    fmt.Sprintf("Could not analyze %s: %v", inputFilename, err),
				Context:    fmt.Sprintf("File: %s", inputPath),
				Suggestion: "Check if ffmpeg can decode this file",
			})
			logger.Error("Analysis failed for %s: %v", inputFilename, err)
			failures = append(failures, Failure{Filename: inputFilename, Err: err})
			continue
		}
		if series.Skipped > 0 {
			rep.Warning(fmt.Sprintf("Skipped %d undecodable frame(s) in %s", series.Skipped, inputFilename))
			logger.Warn("Skipped %d frame(s) in %s", series.Skipped, inputFilename)
		}

		csvPath := output.CSVName(cfg.OutputDir, inputPath, cfg.Percentile)
		plotPath := output.PlotName(cfg.OutputDir, inputPath, cfg.Percentile)

		if err := output.WriteCSV(csvPath, series, cfg.Precision); err != nil {
			rep.Error(reporter.ReporterError{
				Title:      "Write Error",
				Message:    fmt.Sprintf("Could not write export for %s: %v", inputFilename, err),
				Context:    fmt.Sprintf("Path: %s", csvPath),
				Suggestion: "Check that the output folder is writable",
			})
			logger.Error("Export write failed for %s: %v", inputFilename, err)
			failures = append(failures, Failure{Filename: inputFilename, Err: err})
			continue
		}
		if err := output.WritePlot(plotPath, series); err != nil {
			rep.Error(reporter.ReporterError{
				Title:      "Write Error",
				Message:    fmt.Sprintf("Could not write plot for %s: %v", inputFilename, err),
				Context:    fmt.Sprintf("Path: %s", plotPath),
				Suggestion: "Check that the output folder is writable",
			})
			logger.Error("Plot write failed for %s: %v", inputFilename, err)
			failures = append(failures, Failure{Filename: inputFilename, Err: err})
			continue
		}

		minVal, maxVal, peakFrame := series.MinMax()
		rep.ArtifactsWritten(reporter.ArtifactSummary{
			InputFile: inputFilename,
			CSVFile:   util.GetFilename(csvPath),
			PlotFile:  util.GetFilename(plotPath),
			Frames:    series.Len(),
			Skipped:   series.Skipped,
			MinValue:  minVal,
			MaxValue:  maxVal,
			PeakFrame: peakFrame,
		})
		logger.Info("Wrote %s and %s (%d frames, range %.2f-%.2f)",
			util.GetFilename(csvPath), util.GetFilename(plotPath), series.Len(), minVal, maxVal)

		validationResult := validation.VerifyArtifacts(csvPath, plotPath, series)
		var repSteps []reporter.ValidationStep
		for _, step := range validationResult.Steps() {
			repSteps = append(repSteps, reporter.ValidationStep{
				Name:    step.Name,
				Passed:  step.Passed,
				Details: step.Details,
			})
		}
		rep.ValidationComplete(reporter.ValidationSummary{
			Passed: validationResult.IsValid(),
			Steps:  repSteps,
		})
		if !validationResult.IsValid() {
			logger.Warn("Artifact validation failed for %s", inputFilename)
		}

		totalFrames += uint64(series.Len())
		results = append(results, Result{
			Filename:         inputFilename,
			Frames:           series.Len(),
			Skipped:          series.Skipped,
			Duration:         time.Since(fileStartTime),
			CSVPath:          csvPath,
			PlotPath:         plotPath,
			MinValue:         minVal,
			MaxValue:         maxVal,
			PeakFrame:        peakFrame,
			ValidationPassed: validationResult.IsValid(),
		})
	}

	var repFailures []reporter.FileFailure
	for _, failure := range failures {
		repFailures = append(repFailures, reporter.FileFailure{
			Filename: failure.Filename,
			Reason:   failure.Err.Error(),
		})
	}
	rep.BatchComplete(reporter.BatchSummary{
		SuccessfulCount: len(results),
		FailedCount:     len(failures),
		TotalFiles:      len(filesToProcess),
		TotalFrames:     totalFrames,
		TotalDuration:   time.Since(batchStart),
		Failures:        repFailures,
	})
	logger.Info("Batch complete: %d succeeded, %d failed, %d frames in %s",
		len(results), len(failures), totalFrames, time.Since(batchStart).Round(time.Second))

	return results, failures
}
