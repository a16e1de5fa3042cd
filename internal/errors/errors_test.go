package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindInput, "Input error"},
		{KindNoFilesFound, "No files found"},
		{KindDecode, "Decode error"},
		{KindProbeParse, "Probe parse error"},
		{KindCommand, "Command error"},
		{KindWrite, "Write error"},
		{KindConfig, "Configuration error"},
		{KindCancelled, "Operation cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ErrorKind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCoreErrorError(t *testing.T) {
	// Test error with underlying error
	underlying := errors.New("underlying error")
	err := &CoreError{
		Kind:       KindDecode,
		Message:    "test message",
		Underlying: underlying,
	}

	got := err.Error()
	expected := "Decode error: test message: underlying error"
	if got != expected {
		t.Errorf("CoreError.Error() = %v, want %v", got, expected)
	}

	// Test error without underlying error
	err2 := &CoreError{
		Kind:    KindConfig,
		Message: "config issue",
	}

	got2 := err2.Error()
	expected2 := "Configuration error: config issue"
	if got2 != expected2 {
		t.Errorf("CoreError.Error() = %v, want %v", got2, expected2)
	}
}

func TestCoreErrorUnwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &CoreError{
		Kind:       KindWrite,
		Message:    "test",
		Underlying: underlying,
	}

	if err.Unwrap() != underlying {
		t.Error("Unwrap() should return underlying error")
	}
}

func TestCoreErrorIs(t *testing.T) {
	err1 := &CoreError{Kind: KindDecode, Message: "test1"}
	err2 := &CoreError{Kind: KindDecode, Message: "test2"}
	err3 := &CoreError{Kind: KindConfig, Message: "test3"}

	if !err1.Is(err2) {
		t.Error("Same kind errors should match")
	}

	if err1.Is(err3) {
		t.Error("Different kind errors should not match")
	}
}

func TestCommandError(t *testing.T) {
	// Test CommandStart error
	startErr := &CommandError{
		Command:    "ffmpeg",
		Kind:       CommandStart,
		Underlying: errors.New("not found"),
	}
	if got := startErr.Error(); got != "failed to execute ffmpeg: not found" {
		t.Errorf("CommandStart error = %v", got)
	}

	// Test CommandFailed error with stderr
	failedErr := &CommandError{
		Command:  "ffprobe",
		Kind:     CommandFailed,
		ExitCode: 1,
		Stderr:   "invalid data",
	}
	if got := failedErr.Error(); got != "command ffprobe failed with exit code 1: invalid data" {
		t.Errorf("CommandFailed error = %v", got)
	}

	// Test CommandFailed error without stderr
	failedNoStderr := &CommandError{
		Command:  "ffprobe",
		Kind:     CommandFailed,
		ExitCode: 2,
	}
	if got := failedNoStderr.Error(); got != "command ffprobe failed with exit code 2" {
		t.Errorf("CommandFailed error without stderr = %v", got)
	}
}

func TestIsKind(t *testing.T) {
	decodeErr := NewDecodeError("cannot open", nil)

	if !IsKind(decodeErr, KindDecode) {
		t.Error("IsKind should match KindDecode")
	}
	if IsKind(decodeErr, KindWrite) {
		t.Error("IsKind should not match KindWrite")
	}

	// Wrapped errors are still matched
	wrapped := fmt.Errorf("processing failed: %w", decodeErr)
	if !IsKind(wrapped, KindDecode) {
		t.Error("IsKind should match through wrapping")
	}

	if IsKind(errors.New("plain"), KindDecode) {
		t.Error("IsKind should not match a plain error")
	}
}

func TestKindPredicates(t *testing.T) {
	if !IsCancelled(NewCancelledError()) {
		t.Error("IsCancelled should match NewCancelledError")
	}
	if !IsNoFilesFound(NewNoFilesFoundError("/videos")) {
		t.Error("IsNoFilesFound should match NewNoFilesFoundError")
	}
	if !IsDecode(NewDecodeError("bad stream", nil)) {
		t.Error("IsDecode should match NewDecodeError")
	}
	if !IsWrite(NewWriteError("disk full", nil)) {
		t.Error("IsWrite should match NewWriteError")
	}
	if IsDecode(NewWriteError("disk full", nil)) {
		t.Error("IsDecode should not match a write error")
	}
}

func TestNewNoFilesFoundError(t *testing.T) {
	err := NewNoFilesFoundError("/videos")
	expected := "No files found: no recognized video files found in /videos"
	if err.Error() != expected {
		t.Errorf("NewNoFilesFoundError() = %v, want %v", err.Error(), expected)
	}
}
