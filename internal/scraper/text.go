package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reFootnote  = regexp.MustCompile(`\[[^\]]*\]`)
	reNonDigits = regexp.MustCompile(`\D`)
)

// CleanText collapses whitespace, including non-breaking spaces, and trims
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// ParseCount reads a medal count from cell text. Bracketed footnotes are dropped
// before every non-digit is removed, so "12[a]" and "12[3]" are both 12. Text
// without digits ("—", "") is 0.
func ParseCount(s string) int {
	s = reFootnote.ReplaceAllString(s, "")
	digits := reNonDigits.ReplaceAllString(s, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
