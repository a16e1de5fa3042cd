// Package analyze drives the per-video frame loop and accumulates the
// percentile series.
package analyze

import (
	"context"
	"errors"
	"io"

	errs "github.com/lumascan/lumascan/internal/errors"
	"github.com/lumascan/lumascan/internal/ffmpeg"
	"github.com/lumascan/lumascan/internal/ffprobe"
	"github.com/lumascan/lumascan/internal/stats"
)

// Sample is one (frame index, percentile value) pair.
type Sample struct {
	Index int
	Value float64
}

// Series is the ordered per-frame percentile sequence for one video.
// Sample order is decode order; indices are contiguous from 0 over
// successfully reduced frames.
type Series struct {
	Path       string
	Percentile float64
	Samples    []Sample
	// Skipped counts frames dropped by per-frame decode anomalies.
	Skipped int
}

// Len returns the number of reduced frames.
func (s *Series) Len() int {
	return len(s.Samples)
}

// Values returns the series values in frame order.
func (s *Series) Values() []float64 {
	values := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		values[i] = sample.Value
	}
	return values
}

// MinMax returns the smallest and largest value and the frame index of the
// largest. Zero values for an empty series.
func (s *Series) MinMax() (minVal, maxVal float64, peakFrame int) {
	if len(s.Samples) == 0 {
		return 0, 0, 0
	}
	minVal, maxVal = s.Samples[0].Value, s.Samples[0].Value
	peakFrame = s.Samples[0].Index
	for _, sample := range s.Samples[1:] {
		if sample.Value < minVal {
			minVal = sample.Value
		}
		if sample.Value > maxVal {
			maxVal = sample.Value
			peakFrame = sample.Index
		}
	}
	return minVal, maxVal, peakFrame
}

// frameSource abstracts the decoder so the frame loop is testable without
// an ffmpeg process.
type frameSource interface {
	Next() (*ffmpeg.Frame, error)
	Close() error
}

// FrameFunc is invoked after each reduced frame with the running frame count.
type FrameFunc func(framesDone int)

// Video analyzes one video file: probes it if info is nil, then reduces
// every decodable frame to its percentile value. A file that cannot be
// opened or holds no decodable frames yields an error and no series;
// per-frame anomalies only skip the affected frame.
func Video(ctx context.Context, path string, info *ffprobe.VideoInfo, percentile float64, grayscale bool, onFrame FrameFunc) (*Series, error) {
	if info == nil {
		probed, err := ffprobe.Probe(ctx, path)
		if err != nil {
			return nil, err
		}
		info = probed
	}

	src, err := ffmpeg.OpenSource(ctx, path, info.Width, info.Height, grayscale)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	series := &Series{Path: path, Percentile: percentile}
	if err := collect(ctx, src, series, onFrame); err != nil {
		return nil, err
	}
	return series, nil
}

// collect runs the frame loop over a source, appending to series.
func collect(ctx context.Context, src frameSource, series *Series, onFrame FrameFunc) error {
	for {
		if err := ctx.Err(); err != nil {
			return errs.NewCancelledError()
		}

		frame, err := src.Next()
		switch {
		case err == nil:
			value, rerr := stats.Percentile(frame.Pix, series.Percentile)
			if rerr != nil {
				// Zero-pixel frame: a decode anomaly, skip it.
				series.Skipped++
				continue
			}
			series.Samples = append(series.Samples, Sample{
				Index: len(series.Samples),
				Value: value,
			})
			if onFrame != nil {
				onFrame(len(series.Samples))
			}
		case err == io.EOF:
			if len(series.Samples) == 0 {
				return errs.NewDecodeError("no decodable frames in "+series.Path, nil)
			}
			return nil
		case errors.Is(err, ffmpeg.ErrTruncatedFrame):
			series.Skipped++
		case errs.IsDecode(err) && len(series.Samples) > 0:
			// Decoder died mid-stream after producing frames; keep what
			// was reduced and count the loss as a skip.
			series.Skipped++
			return nil
		default:
			return err
		}
	}
}
