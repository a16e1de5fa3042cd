package lumascan

import "testing"

func TestParsePercentile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integral", "95", 95, false},
		{"fractional", "99.5", 99.5, false},
		{"lower bound", "0", 0, false},
		{"upper bound", "100", 100, false},
		{"surrounding whitespace", " 50 ", 50, false},
		{"negative", "-1", 0, true},
		{"too large", "100.1", 0, true},
		{"not a number", "high", 0, true},
		{"empty", "", 0, true},
		{"nan", "NaN", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePercentile(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePercentile(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePercentile(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePercentile(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewValidatesOptions(t *testing.T) {
	if _, err := New(); err != nil {
		t.Errorf("New() with defaults should succeed: %v", err)
	}

	if _, err := New(WithPercentile(150)); err == nil {
		t.Error("New() with out-of-range percentile should fail")
	}

	if _, err := New(WithPrecision(-1)); err == nil {
		t.Error("New() with negative precision should fail")
	}

	if _, err := New(WithExtensions(nil)); err == nil {
		t.Error("New() with empty extension filter should fail")
	}
}

func TestNewAppliesOptions(t *testing.T) {
	analyzer, err := New(
		WithPercentile(99.5),
		WithGrayscale(false),
		WithPrecision(2),
		WithExtensions([]string{"mkv"}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	cfg := analyzer.config
	if cfg.Percentile != 99.5 {
		t.Errorf("percentile = %v, want 99.5", cfg.Percentile)
	}
	if cfg.Grayscale {
		t.Error("grayscale should be disabled")
	}
	if cfg.Precision != 2 {
		t.Errorf("precision = %d, want 2", cfg.Precision)
	}
	if !cfg.ExtensionSet()[".mkv"] {
		t.Error("extension set should contain .mkv")
	}
}
