// Package ffmpeg decodes video files into raw frames through an ffmpeg subprocess.
package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	errs "github.com/lumascan/lumascan/internal/errors"
)

// ErrTruncatedFrame reports a partial frame at the end of the stream.
// The caller should count the frame as skipped; the next Next call
// returns io.EOF.
var ErrTruncatedFrame = errors.New("truncated frame at end of stream")

// Frame is one decoded raster image. Pix holds 8-bit samples in row-major
// order, Channels samples per pixel (1 for luma, 3 for RGB). The buffer is
// owned by the Source and reused between Next calls; a frame must be fully
// consumed before the next one is requested.
type Frame struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// Samples returns the number of 8-bit samples in the frame.
func (f *Frame) Samples() int {
	return len(f.Pix)
}

// DecodeArgs builds the ffmpeg argument list for streaming raw frames to stdout.
// With grayscale enabled frames are converted to 8-bit luma by the decoder.
func DecodeArgs(path string, grayscale bool) []string {
	pixFmt := "rgb24"
	if grayscale {
		pixFmt = "gray"
	}
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-nostdin",
		"-i", path,
		"-map", "0:v:0",
		"-f", "rawvideo",
		"-pix_fmt", pixFmt,
		"-",
	}
}

// Source produces a lazy, finite sequence of frames in decode order.
// It is not restartable; open a new Source to re-scan a file.
type Source struct {
	cmd    *exec.Cmd
	stdout io.Closer
	reader io.Reader
	stderr bytes.Buffer

	frame Frame
	done  bool
}

// OpenSource starts an ffmpeg decode of the first video stream of path.
// The returned Source must be closed to release the decode handle,
// whether the sequence is consumed fully, partially, or abandoned.
func OpenSource(ctx context.Context, path string, width, height int, grayscale bool) (*Source, error) {
	if width <= 0 || height <= 0 {
		return nil, errs.NewDecodeError("invalid frame dimensions", nil)
	}

	channels := 3
	if grayscale {
		channels = 1
	}

	s := &Source{
		frame: Frame{
			Pix:      make([]uint8, width*height*channels),
			Width:    width,
			Height:   height,
			Channels: channels,
		},
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", DecodeArgs(path, grayscale)...)
	cmd.Stderr = &s.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errs.NewDecodeError("cannot open decode pipe for "+path, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, errs.NewDecodeError("cannot open "+path,
			errs.NewCommandStartError("ffmpeg", err))
	}

	s.cmd = cmd
	s.stdout = stdout
	s.reader = bufio.NewReaderSize(stdout, 1<<16)
	return s, nil
}

// Next returns the next frame, io.EOF at the clean end of the stream, or an
// error. The frame is only valid until the following Next call.
func (s *Source) Next() (*Frame, error) {
	if s.done {
		return nil, io.EOF
	}

	_, err := io.ReadFull(s.reader, s.frame.Pix)
	switch {
	case err == nil:
		return &s.frame, nil
	case err == io.EOF:
		s.done = true
		if werr := s.finish(); werr != nil {
			return nil, werr
		}
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		s.done = true
		if werr := s.finish(); werr != nil {
			return nil, werr
		}
		return nil, ErrTruncatedFrame
	default:
		s.done = true
		_ = s.finish()
		return nil, errs.NewDecodeError("reading frame data", err)
	}
}

// finish reaps the decoder process after the stream ended.
func (s *Source) finish() error {
	if s.cmd == nil {
		return nil
	}
	cmd := s.cmd
	s.cmd = nil

	err := cmd.Wait()
	if err == nil {
		return nil
	}
	if cmd.ProcessState != nil && cmd.ProcessState.ExitCode() == -1 {
		// Killed by context cancellation
		return errs.NewCancelledError()
	}
	stderr := strings.TrimSpace(s.stderr.String())
	return errs.NewDecodeError("decoder failed",
		errs.WrapExecError("ffmpeg", err, stderr))
}

// Close releases the decode handle. Safe to call multiple times and after
// the sequence has been fully consumed.
func (s *Source) Close() error {
	s.done = true
	if s.cmd != nil {
		// Abandoned mid-stream: kill the decoder rather than draining it.
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
		cmd := s.cmd
		s.cmd = nil
		_ = cmd.Wait()
	}
	if s.stdout != nil {
		closer := s.stdout
		s.stdout = nil
		return closer.Close()
	}
	return nil
}

// newSourceFromReader builds a Source over an in-memory stream.
// Used by tests to exercise frame framing without a decoder process.
func newSourceFromReader(r io.Reader, width, height, channels int) *Source {
	return &Source{
		reader: r,
		frame: Frame{
			Pix:      make([]uint8, width*height*channels),
			Width:    width,
			Height:   height,
			Channels: channels,
		},
	}
}
