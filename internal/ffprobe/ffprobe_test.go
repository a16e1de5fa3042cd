package ffprobe

import (
	"testing"

	errs "github.com/lumascan/lumascan/internal/errors"
)

func TestParseProbeOutput(t *testing.T) {
	data := []byte(`{
		"format": {"duration": "12.480000"},
		"streams": [
			{"codec_type": "audio", "channels": 2},
			{"codec_type": "video", "width": 1280, "height": 720, "nb_frames": "312"}
		]
	}`)

	info, err := parseProbeOutput(data, "clip.mp4")
	if err != nil {
		t.Fatalf("parseProbeOutput() error = %v", err)
	}

	if info.Width != 1280 || info.Height != 720 {
		t.Errorf("dimensions = %dx%d, want 1280x720", info.Width, info.Height)
	}
	if info.DurationSecs != 12.48 {
		t.Errorf("DurationSecs = %v, want 12.48", info.DurationSecs)
	}
	if info.TotalFrames != 312 {
		t.Errorf("TotalFrames = %d, want 312", info.TotalFrames)
	}
}

func TestParseProbeOutputNoFrameCount(t *testing.T) {
	data := []byte(`{
		"format": {"duration": "3.0"},
		"streams": [{"codec_type": "video", "width": 320, "height": 240}]
	}`)

	info, err := parseProbeOutput(data, "clip.mkv")
	if err != nil {
		t.Fatalf("parseProbeOutput() error = %v", err)
	}
	if info.TotalFrames != 0 {
		t.Errorf("TotalFrames = %d, want 0 for missing nb_frames", info.TotalFrames)
	}
}

func TestParseProbeOutputNoVideoStream(t *testing.T) {
	data := []byte(`{
		"format": {"duration": "3.0"},
		"streams": [{"codec_type": "audio", "channels": 2}]
	}`)

	_, err := parseProbeOutput(data, "audio.mp4")
	if err == nil {
		t.Fatal("parseProbeOutput() should fail without a video stream")
	}
	if !errs.IsDecode(err) {
		t.Errorf("error = %v, want decode kind", err)
	}
}

func TestParseProbeOutputInvalidDimensions(t *testing.T) {
	data := []byte(`{
		"streams": [{"codec_type": "video", "width": 0, "height": 720}]
	}`)

	_, err := parseProbeOutput(data, "broken.mp4")
	if err == nil {
		t.Fatal("parseProbeOutput() should fail on zero width")
	}
	if !errs.IsDecode(err) {
		t.Errorf("error = %v, want decode kind", err)
	}
}

func TestParseProbeOutputInvalidJSON(t *testing.T) {
	_, err := parseProbeOutput([]byte("not json"), "garbage.mp4")
	if err == nil {
		t.Fatal("parseProbeOutput() should fail on invalid JSON")
	}
	if !errs.IsKind(err, errs.KindProbeParse) {
		t.Errorf("error = %v, want probe-parse kind", err)
	}
}
