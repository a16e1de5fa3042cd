package reporter

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/lumascan/lumascan/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu       sync.Mutex
	progress *progressbar.ProgressBar
	cyan     *color.Color
	green    *color.Color
	yellow   *color.Color
	red      *color.Color
	magenta  *color.Color
	bold     *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
	}
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
}

// printLabel prints a bold label with fixed width padding followed by a value.
// Width is applied to the plain text before styling to ensure proper alignment.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) Hardware(summary HardwareSummary) {
	fmt.Println()
	_, _ = r.cyan.Println("HARDWARE")
	r.printLabel(10, "Hostname:", summary.Hostname)
	r.printLabel(10, "System:", fmt.Sprintf("%s/%s, %d CPUs", summary.OS, summary.Arch, summary.NumCPU))
}

func (r *TerminalReporter) BatchStarted(info BatchStartInfo) {
	fmt.Println()
	_, _ = r.cyan.Println("BATCH")
	r.printLabel(12, "Videos:", fmt.Sprintf("%d", info.TotalFiles))
	r.printLabel(12, "Percentile:", util.FormatPercentile(info.Percentile))
	r.printLabel(12, "Output:", info.OutputDir)
}

func (r *TerminalReporter) FileProgress(context FileProgressContext) {
	fmt.Println()
	_, _ = r.magenta.Printf("[%d/%d]\n", context.CurrentFile, context.TotalFiles)
}

func (r *TerminalReporter) VideoInfo(summary VideoSummary) {
	fmt.Println()
	_, _ = r.cyan.Println("VIDEO")
	r.printLabel(12, "File:", summary.InputFile)
	r.printLabel(12, "Resolution:", summary.Resolution)
	r.printLabel(12, "Duration:", summary.Duration)
	if summary.TotalFrames > 0 {
		r.printLabel(12, "Frames:", fmt.Sprintf("%d", summary.TotalFrames))
	}
}

func (r *TerminalReporter) AnalysisStarted(totalFrames uint64) {
	r.finishProgress()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress = progressbar.NewOptions64(
		100,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Analyzing [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) AnalysisProgress(progress ProgressSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.progress == nil {
		return
	}

	if progress.TotalFrames > 0 {
		clamped := progress.Percent
		if clamped > 100 {
			clamped = 100
		}
		_ = r.progress.Set64(int64(clamped))
	}
	r.progress.Describe(fmt.Sprintf("frame %d", progress.CurrentFrame))
}

func (r *TerminalReporter) ArtifactsWritten(summary ArtifactSummary) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.cyan.Println("OUTPUT")
	r.printLabel(12, "Export:", summary.CSVFile)
	r.printLabel(12, "Plot:", summary.PlotFile)
	frames := fmt.Sprintf("%d", summary.Frames)
	if summary.Skipped > 0 {
		frames += fmt.Sprintf(" (%d skipped)", summary.Skipped)
	}
	r.printLabel(12, "Frames:", frames)
	r.printLabel(12, "Range:", fmt.Sprintf("%.2f - %.2f (peak at frame %d)",
		summary.MinValue, summary.MaxValue, summary.PeakFrame))
}

func (r *TerminalReporter) ValidationComplete(summary ValidationSummary) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.cyan.Println("VALIDATION")

	if summary.Passed {
		fmt.Printf("  %s\n", r.green.Add(color.Bold).Sprint("All checks passed"))
	} else {
		fmt.Printf("  %s\n", r.red.Sprint("Validation failed"))
	}

	maxLen := 0
	for _, step := range summary.Steps {
		if len(step.Name) > maxLen {
			maxLen = len(step.Name)
		}
	}

	for _, step := range summary.Steps {
		var status string
		if step.Passed {
			status = r.green.Sprint("ok")
		} else {
			status = r.red.Sprint("FAIL")
		}
		padded := fmt.Sprintf("%-*s", maxLen, step.Name)
		fmt.Printf("  %s  %s  %s\n", r.bold.Sprint(padded), status, step.Details)
	}
}

func (r *TerminalReporter) Warning(message string) {
	r.finishProgress()
	fmt.Printf("  %s %s\n", r.yellow.Sprint("Warning:"), message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.red.Println(err.Title)
	fmt.Printf("  %s\n", err.Message)
	if err.Context != "" {
		fmt.Printf("  %s\n", err.Context)
	}
	if err.Suggestion != "" {
		fmt.Printf("  %s %s\n", r.bold.Sprint("Suggestion:"), err.Suggestion)
	}
}

func (r *TerminalReporter) BatchComplete(summary BatchSummary) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.cyan.Println("SUMMARY")
	r.printLabel(12, "Succeeded:", fmt.Sprintf("%d of %d", summary.SuccessfulCount, summary.TotalFiles))
	r.printLabel(12, "Frames:", fmt.Sprintf("%d", summary.TotalFrames))
	r.printLabel(12, "Elapsed:", util.FormatDuration(summary.TotalDuration.Seconds()))

	if summary.FailedCount > 0 {
		fmt.Printf("  %s\n", r.red.Sprintf("Failed: %d", summary.FailedCount))
		for _, failure := range summary.Failures {
			fmt.Printf("    %s %s\n", r.bold.Sprint(failure.Filename+":"),
				strings.TrimSpace(failure.Reason))
		}
	}
	fmt.Println()
}
