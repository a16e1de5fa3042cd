// Package validation provides post-write artifact checks.
package validation

import (
	"fmt"

	"github.com/lumascan/lumascan/internal/analyze"
	"github.com/lumascan/lumascan/internal/output"
	"github.com/lumascan/lumascan/internal/util"
)

// Result contains the overall artifact validation result.
type Result struct {
	IsExportPresent  bool
	IsExportComplete bool
	IsPlotPresent    bool

	// Details
	ExportMessage string
	PlotMessage   string
}

// Step represents a single validation check.
type Step struct {
	Name    string
	Passed  bool
	Details string
}

// IsValid returns true if all validation checks passed.
func (r *Result) IsValid() bool {
	return r.IsExportPresent && r.IsExportComplete && r.IsPlotPresent
}

// Steps returns all validation steps with results.
func (r *Result) Steps() []Step {
	return []Step{
		{
			Name:    "CSV export",
			Passed:  r.IsExportPresent && r.IsExportComplete,
			Details: r.ExportMessage,
		},
		{
			Name:    "Plot image",
			Passed:  r.IsPlotPresent,
			Details: r.PlotMessage,
		},
	}
}

// VerifyArtifacts re-reads the written artifacts and checks them against the
// in-memory series: the export must hold exactly one row per reduced frame
// and the plot must exist and be non-empty.
func VerifyArtifacts(csvPath, plotPath string, series *analyze.Series) *Result {
	result := &Result{}

	samples, err := output.ReadCSV(csvPath)
	if err != nil {
		result.ExportMessage = fmt.Sprintf("Export unreadable: %v", err)
	} else {
		result.IsExportPresent = true
		if len(samples) == series.Len() {
			result.IsExportComplete = true
			result.ExportMessage = fmt.Sprintf("%d rows match %d reduced frames", len(samples), series.Len())
		} else {
			result.ExportMessage = fmt.Sprintf("Row count mismatch: got %d, expected %d", len(samples), series.Len())
		}
	}

	size, err := util.GetFileSize(plotPath)
	switch {
	case err != nil:
		result.PlotMessage = fmt.Sprintf("Plot missing: %v", err)
	case size == 0:
		result.PlotMessage = "Plot file is empty"
	default:
		result.IsPlotPresent = true
		result.PlotMessage = fmt.Sprintf("Plot written (%s)", util.FormatBytes(size))
	}

	return result
}
