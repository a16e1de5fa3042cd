// Package main provides the CLI entry point for lumascan.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lumascan/lumascan/internal/config"
	"github.com/lumascan/lumascan/internal/discovery"
	errs "github.com/lumascan/lumascan/internal/errors"
	"github.com/lumascan/lumascan/internal/logging"
	"github.com/lumascan/lumascan/internal/processing"
	"github.com/lumascan/lumascan/internal/reporter"
	"github.com/lumascan/lumascan/internal/util"
)

const (
	appName    = "lumascan"
	appVersion = "0.1.0"
)

// analyzeArgs holds the parsed flags for the analyze command.
type analyzeArgs struct {
	inputDir    string
	outputDir   string
	logDir      string
	percentile  float64
	extensions  []string
	noGrayscale bool
	precision   int
	strict      bool
	jsonOutput  bool
	noLog       bool
	verbose     bool
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Per-frame pixel intensity percentile analysis for video files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAnalyzeCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	}
}

func newAnalyzeCommand() *cobra.Command {
	var aa analyzeArgs

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze every video in a folder and write per-frame percentile artifacts",
		Long: `Analyze decodes every frame of each video in the input folder, reduces
each frame to the pixel intensity value at the chosen percentile, and
writes two artifacts per video next to the inputs (or into --output):
a <name>_percentile<P>.csv export and a <name>_percentile<P>.png plot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(aa)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&aa.inputDir, "input", "i", "", "Input folder containing video files (required)")
	flags.StringVarP(&aa.outputDir, "output", "o", "", "Output folder for artifacts (defaults to the input folder)")
	flags.StringVarP(&aa.logDir, "log-dir", "l", "", "Log directory (defaults to OUTPUT/logs)")
	flags.Float64VarP(&aa.percentile, "percentile", "p", config.DefaultPercentile, "Percentile parameter (0-100, fractional values allowed)")
	flags.StringSliceVar(&aa.extensions, "extensions", util.DefaultVideoExtensions, "Recognized video file extensions")
	flags.BoolVar(&aa.noGrayscale, "no-grayscale", false, "Analyze all color channel samples instead of luma")
	flags.IntVar(&aa.precision, "precision", config.DefaultPrecision, "Fractional digits in the CSV export")
	flags.BoolVar(&aa.strict, "strict", false, "Exit non-zero when any file fails")
	flags.BoolVar(&aa.jsonOutput, "json", false, "Emit NDJSON progress events instead of terminal output")
	flags.BoolVar(&aa.noLog, "no-log", false, "Disable log file creation")
	flags.BoolVarP(&aa.verbose, "verbose", "v", false, "Enable verbose logging")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runAnalyze(aa analyzeArgs) error {
	inputDir, err := filepath.Abs(aa.inputDir)
	if err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}

	outputDir := aa.outputDir
	if outputDir == "" {
		outputDir = inputDir
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if err := util.EnsureDirectory(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logDir := aa.logDir
	if logDir == "" {
		logDir = filepath.Join(outputDir, "logs")
	}

	cfg := config.NewConfig(inputDir, outputDir, logDir)
	cfg.Percentile = aa.percentile
	cfg.Extensions = aa.extensions
	cfg.Grayscale = !aa.noGrayscale
	cfg.Precision = aa.precision
	cfg.Strict = aa.strict

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.Setup(logDir, aa.verbose, aa.noLog)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	filesToProcess, err := discovery.FindVideoFilesWithLogging(inputDir, cfg.ExtensionSet(), logger)
	if err != nil {
		return err
	}

	logger.Info("Input folder: %s", inputDir)
	logger.Info("Output folder: %s", outputDir)
	logger.Info("Percentile: %s", util.FormatPercentile(cfg.Percentile))
	logger.Info("Grayscale: %v, precision: %d, strict: %v", cfg.Grayscale, cfg.Precision, cfg.Strict)

	var rep reporter.Reporter
	if aa.jsonOutput {
		rep = reporter.NewJSONReporter()
	} else {
		rep = reporter.NewTerminalReporter()
	}
	if logger != nil {
		// Mirror the event stream into the run log as NDJSON.
		rep = reporter.NewCompositeReporter(rep,
			reporter.NewJSONReporterWithWriter(logger.Writer()))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	_, failures := processing.ProcessVideos(ctx, cfg, filesToProcess, rep, logger)

	if ctx.Err() != nil {
		return errs.NewCancelledError()
	}
	if cfg.Strict && len(failures) > 0 {
		return fmt.Errorf("%d of %d file(s) failed", len(failures), len(filesToProcess))
	}
	return nil
}
