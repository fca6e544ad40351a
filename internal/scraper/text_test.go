package scraper

import (
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"12", 12},
		{"12[a]", 12},
		{"12[3]", 12},
		{" 7 ", 7},
		{"1,024", 1024},
		{"—", 0},
		{"–", 0},
		{"", 0},
		{"n/a", 0},
		{"[b]", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCount(tt.input); got != tt.expected {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Norway  ", "Norway"},
		{"Norway (NOR)", "Norway (NOR)"},
		{"United\n\t States", "United States"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.expected {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
