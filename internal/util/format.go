// Package util provides utility functions for formatting and common operations.
package util

import (
	"fmt"
	"strconv"
)

const (
	KiB = 1024
	MiB = KiB * 1024
	GiB = MiB * 1024
)

// FormatBytes formats bytes with appropriate binary units (B, KiB, MiB, GiB).
func FormatBytes(bytes uint64) string {
	bf := float64(bytes)
	switch {
	case bf >= GiB:
		return fmt.Sprintf("%.2f GiB", bf/GiB)
	case bf >= MiB:
		return fmt.Sprintf("%.2f MiB", bf/MiB)
	case bf >= KiB:
		return fmt.Sprintf("%.2f KiB", bf/KiB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatDuration formats seconds as HH:MM:SS.
func FormatDuration(seconds float64) string {
	if seconds < 0 || seconds != seconds { // NaN check
		return "??:??:??"
	}

	totalSecs := int64(seconds)
	hours := totalSecs / 3600
	minutes := (totalSecs % 3600) / 60
	secs := totalSecs % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// FormatValue formats an intensity value with a fixed number of fractional digits.
// This is the canonical representation used in the CSV export.
func FormatValue(value float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// FormatPercentile formats a percentile parameter for artifact names and labels.
// Integral values render without a fractional part (95, not 95.0).
func FormatPercentile(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// PercentileOrdinal returns a percentile with an English ordinal suffix, e.g. "95th".
func PercentileOrdinal(p float64) string {
	s := FormatPercentile(p)
	suffix := "th"
	if i := int(p); float64(i) == p {
		switch {
		case i%100 >= 11 && i%100 <= 13:
			suffix = "th"
		case i%10 == 1:
			suffix = "st"
		case i%10 == 2:
			suffix = "nd"
		case i%10 == 3:
			suffix = "rd"
		}
	}
	return s + suffix
}
