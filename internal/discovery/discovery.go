// Package discovery provides video file discovery for batch analysis.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	errs "github.com/lumascan/lumascan/internal/errors"
	"github.com/lumascan/lumascan/internal/util"
)

// Logger defines the interface for discovery logging.
type Logger interface {
	Info(format string, args ...any)
	Debug(format string, args ...any)
}

// FindVideoFiles finds files with a recognized extension directly inside
// inputDir. Subfolders are not entered. Returns paths sorted alphabetically
// by filename, or an error when the folder is unusable or holds no matches.
func FindVideoFiles(inputDir string, extensions map[string]bool) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, errs.NewInputError("folder does not exist: "+inputDir, err)
	}
	if !info.IsDir() {
		return nil, errs.NewInputError(inputDir+" is not a folder", nil)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, errs.NewInputError("cannot read folder "+inputDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		// Skip hidden files
		if strings.HasPrefix(name, ".") {
			continue
		}

		fullPath := filepath.Join(inputDir, name)
		if util.IsVideoFile(fullPath, extensions) {
			files = append(files, fullPath)
		}
	}

	if len(files) == 0 {
		return nil, errs.NewNoFilesFoundError(inputDir)
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})

	return files, nil
}

// FindVideoFilesWithLogging finds video files and logs discovery progress.
// Logs the first 5 files found plus a count summary.
func FindVideoFilesWithLogging(inputDir string, extensions map[string]bool, logger Logger) ([]string, error) {
	files, err := FindVideoFiles(inputDir, extensions)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logDiscoveredFiles(files, logger)
	}

	return files, nil
}

// logDiscoveredFiles logs the first 5 discovered files plus a count.
func logDiscoveredFiles(files []string, logger Logger) {
	logger.Info("Found %d video file(s)", len(files))

	maxToLog := min(5, len(files))
	for i := 0; i < maxToLog; i++ {
		logger.Debug("  %s", filepath.Base(files[i]))
	}

	if len(files) > 5 {
		logger.Debug("  ... and %d more", len(files)-5)
	}
}
