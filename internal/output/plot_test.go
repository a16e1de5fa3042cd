package output

import (
	"os"
	"path/filepath"
	"testing"

	errs "github.com/lumascan/lumascan/internal/errors"
)

func TestWritePlot(t *testing.T) {
	dir := t.TempDir()
	series := sampleSeries()
	path := PlotName(dir, series.Path, series.Percentile)

	if err := WritePlot(path, series); err != nil {
		t.Fatalf("WritePlot() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot artifact is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// PNG signature
	if len(data) < 8 || data[0] != 0x89 || string(data[1:4]) != "PNG" {
		t.Error("plot artifact is not a PNG")
	}
}

func TestWritePlotOverwrites(t *testing.T) {
	dir := t.TempDir()
	series := sampleSeries()
	path := filepath.Join(dir, "plot.png")

	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WritePlot(path, series); err != nil {
		t.Fatalf("WritePlot() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "stale" {
		t.Error("WritePlot should overwrite an existing artifact")
	}
}

func TestWritePlotUnwritableFolder(t *testing.T) {
	series := sampleSeries()
	path := filepath.Join(t.TempDir(), "missing", "plot.png")

	err := WritePlot(path, series)
	if err == nil {
		t.Fatal("WritePlot() should fail for a missing folder")
	}
	if !errs.IsWrite(err) {
		t.Errorf("error = %v, want write kind", err)
	}
}
