package output

import (
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lumascan/lumascan/internal/analyze"
	errs "github.com/lumascan/lumascan/internal/errors"
	"github.com/lumascan/lumascan/internal/util"
)

// Plot dimensions chosen for readable long series.
const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// WritePlot renders the series as one continuous line, value against frame
// index, and saves it as a PNG. An existing plot of the same name is
// overwritten.
func WritePlot(path string, series *analyze.Series) error {
	p := plot.New()
	p.Title.Text = util.GetFilename(series.Path)
	p.X.Label.Text = "Frame number"
	p.Y.Label.Text = util.PercentileOrdinal(series.Percentile) + " percentile pixel intensity (AU)"

	points := make(plotter.XYs, len(series.Samples))
	for i, sample := range series.Samples {
		points[i].X = float64(sample.Index)
		points[i].Y = sample.Value
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return errs.NewWriteError("building plot line for "+path, err)
	}
	p.Add(line)

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		// Distinguish an unwritable folder from a render failure.
		if _, statErr := os.Stat(path); statErr != nil {
			return errs.NewWriteError("cannot write "+path, err)
		}
		return errs.NewWriteError("rendering "+path, err)
	}
	return nil
}
