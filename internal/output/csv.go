// Package output writes the per-video artifacts: a CSV export and a plot.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lumascan/lumascan/internal/analyze"
	errs "github.com/lumascan/lumascan/internal/errors"
	"github.com/lumascan/lumascan/internal/util"
)

// CSVName returns the deterministic CSV artifact path for a video.
func CSVName(outputDir, videoPath string, percentile float64) string {
	return artifactName(outputDir, videoPath, percentile, "csv")
}

// PlotName returns the deterministic plot artifact path for a video.
func PlotName(outputDir, videoPath string, percentile float64) string {
	return artifactName(outputDir, videoPath, percentile, "png")
}

func artifactName(outputDir, videoPath string, percentile float64, ext string) string {
	name := fmt.Sprintf("%s_percentile%s.%s",
		util.GetFileStem(videoPath), util.FormatPercentile(percentile), ext)
	return filepath.Join(outputDir, name)
}

// WriteCSV writes the series as `frame_index,value` rows with a header,
// one row per reduced frame, values at the given fractional precision.
// An existing artifact of the same name is overwritten.
func WriteCSV(path string, series *analyze.Series, precision int) error {
	file, err := os.Create(path)
	if err != nil {
		return errs.NewWriteError("cannot create "+path, err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"frame_index", "value"}); err != nil {
		return errs.NewWriteError("writing header to "+path, err)
	}

	for _, sample := range series.Samples {
		record := []string{
			strconv.Itoa(sample.Index),
			util.FormatValue(sample.Value, precision),
		}
		if err := w.Write(record); err != nil {
			return errs.NewWriteError("writing row to "+path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errs.NewWriteError("flushing "+path, err)
	}
	if err := file.Close(); err != nil {
		return errs.NewWriteError("closing "+path, err)
	}
	return nil
}

// ReadCSV reads an artifact written by WriteCSV back into samples.
// Used for artifact verification and round-trip checks.
func ReadCSV(path string) ([]analyze.Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.NewWriteError("cannot open "+path, err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errs.NewWriteError("reading "+path, err)
	}
	if len(records) == 0 {
		return nil, errs.NewWriteError("empty export "+path, nil)
	}

	// Skip the header row.
	samples := make([]analyze.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 2 {
			return nil, errs.NewWriteError("malformed row in "+path, nil)
		}
		index, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, errs.NewWriteError("bad frame index in "+path, err)
		}
		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, errs.NewWriteError("bad value in "+path, err)
		}
		samples = append(samples, analyze.Sample{Index: index, Value: value})
	}
	return samples, nil
}
