package noc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reFootnotes = regexp.MustCompile(`(\s*(\*|†|‡|\^|\[[^\]]*\]))+$`)
	reArticle   = regexp.MustCompile(`(?i)^the\s+`)

	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// CleanName collapses whitespace and strips trailing footnote markers
// ("Italy*", "Norway[a]") from a committee name as shown in a table.
func CleanName(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	s = reFootnotes.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// NormalizeName returns the form of a name used for code lookup: CleanName plus
// a dropped leading article, so " Italy* " becomes "Italy" and "The Bahamas"
// becomes "Bahamas".
func NormalizeName(s string) string {
	s = CleanName(s)
	return strings.TrimSpace(reArticle.ReplaceAllString(s, ""))
}

// LookupKey is the case- and accent-insensitive key for name-keyed tables
func LookupKey(s string) string {
	s = strings.ReplaceAll(NormalizeName(s), "\u2019", "'")
	key, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return key
}

// IsCode reports whether s is exactly three uppercase ASCII letters
func IsCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
