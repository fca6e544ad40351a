package noc

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{" Italy* ", "Italy"},
		{"The Bahamas", "Bahamas"},
		{"the Netherlands", "Netherlands"},
		{"Norway[a]", "Norway"},
		{"Germany *", "Germany"},
		{"Japan‡", "Japan"},
		{"United   States", "United States"},
		{"Italy (ITA)", "Italy (ITA)"},
		{"Thailand", "Thailand"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCleanName_KeepsArticle(t *testing.T) {
	if got := CleanName("The Bahamas*"); got != "The Bahamas" {
		t.Errorf("CleanName() = %q, want %q", got, "The Bahamas")
	}
}

func TestLookupKey(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"Côte d'Ivoire", "cote d'ivoire"},
		{"Côte d’Ivoire", "Cote d'Ivoire"},
		{"Türkiye", "turkiye"},
		{"The Bahamas", "BAHAMAS"},
		{" Italy* ", "italy"},
	}

	for _, tt := range tests {
		t.Run(tt.a, func(t *testing.T) {
			if LookupKey(tt.a) != LookupKey(tt.b) {
				t.Errorf("LookupKey(%q) = %q, LookupKey(%q) = %q, want equal", tt.a, LookupKey(tt.a), tt.b, LookupKey(tt.b))
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"ITA", true},
		{"ita", false},
		{"IT", false},
		{"ITAL", false},
		{"I1A", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsCode(tt.input); got != tt.expected {
				t.Errorf("IsCode(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
