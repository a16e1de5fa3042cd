// Package ffprobe provides functions for extracting media information using ffprobe.
package ffprobe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"

	errs "github.com/lumascan/lumascan/internal/errors"
)

// VideoInfo contains the stream geometry the frame pipeline needs.
type VideoInfo struct {
	Width        int
	Height       int
	DurationSecs float64
	// TotalFrames is a container hint used only for progress display.
	// Zero when the container does not carry a frame count.
	TotalFrames uint64
}

// ffprobeOutput represents the JSON output from ffprobe.
type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	NbFrames  string `json:"nb_frames"`
}

// Probe executes ffprobe and returns the video stream geometry.
// Fails with a decode error when the file has no usable video stream.
func Probe(ctx context.Context, inputPath string) (*VideoInfo, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	)

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, errs.NewCancelledError()
		}
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		return nil, errs.NewDecodeError("cannot probe "+inputPath,
			errs.WrapExecError("ffprobe", err, stderr))
	}

	return parseProbeOutput(output, inputPath)
}

// parseProbeOutput decodes the ffprobe JSON and extracts the video stream.
func parseProbeOutput(data []byte, inputPath string) (*VideoInfo, error) {
	var probe ffprobeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errs.NewProbeParseError("invalid ffprobe output for "+inputPath, err)
	}

	info := &VideoInfo{}

	if probe.Format.Duration != "" {
		if d, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
			info.DurationSecs = d
		}
	}

	var videoStream *ffprobeStream
	for i := range probe.Streams {
		if probe.Streams[i].CodecType == "video" {
			videoStream = &probe.Streams[i]
			break
		}
	}

	if videoStream == nil {
		return nil, errs.NewDecodeError("no video stream found in "+inputPath, nil)
	}
	if videoStream.Width <= 0 || videoStream.Height <= 0 {
		return nil, errs.NewDecodeError("invalid dimensions in "+inputPath, nil)
	}

	info.Width = videoStream.Width
	info.Height = videoStream.Height

	if videoStream.NbFrames != "" {
		if frames, err := strconv.ParseUint(videoStream.NbFrames, 10, 64); err == nil {
			info.TotalFrames = frames
		}
	}

	return info, nil
}
