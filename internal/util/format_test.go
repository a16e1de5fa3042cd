package util

import (
	"math"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{1024 * 1024, "1.00 MiB"},
		{1024 * 1024 * 1024, "1.00 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3661, "01:01:01"},
		{-1, "??:??:??"},
		{math.NaN(), "??:??:??"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatDuration(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{25, 4, "25.0000"},
		{25.123456, 4, "25.1235"},
		{0, 4, "0.0000"},
		{255, 0, "255"},
		{12.5, 1, "12.5"},
		{12.5, -1, "13"}, // negative precision clamps to zero digits
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatValue(tt.value, tt.precision)
			if got != tt.want {
				t.Errorf("FormatValue(%v, %d) = %q, want %q", tt.value, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFormatPercentile(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{95, "95"},
		{99.5, "99.5"},
		{0, "0"},
		{100, "100"},
		{50.25, "50.25"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatPercentile(tt.p)
			if got != tt.want {
				t.Errorf("FormatPercentile(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentileOrdinal(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{95, "95th"},
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{50, "50th"},
		{99.5, "99.5th"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := PercentileOrdinal(tt.p)
			if got != tt.want {
				t.Errorf("PercentileOrdinal(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}
