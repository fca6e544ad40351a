package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/olympic-medals/internal/medal"
	"github.com/pfrederiksen/olympic-medals/internal/noc"
)

// minCells is a name cell plus gold, silver, bronze and total
const minCells = 5

var (
	reRank            = regexp.MustCompile(`^\d+$`)
	reParentheticCode = regexp.MustCompile(`\(([A-Z]{3})\)$`)
)

// aggregatePrefixes mark summary rows that must not be read as committees
var aggregatePrefixes = []string{"total"}

// codeMatcher infers a committee code from the raw name cell text and the
// cleaned display name
type codeMatcher func(raw, name string) (string, bool)

// parentheticCode matches "Norway (NOR)"
func parentheticCode(raw, _ string) (string, bool) {
	if m := reParentheticCode.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "", false
}

// trailingCode matches "Norway NOR" and a bare "ROC"
func trailingCode(raw, _ string) (string, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", false
	}
	last := fields[len(fields)-1]
	return last, noc.IsCode(last)
}

// mappedCode looks the display name up in the committee tables
func mappedCode(r *noc.Resolver) codeMatcher {
	return func(_, name string) (string, bool) {
		return r.Code(name)
	}
}

func codeMatchers(r *noc.Resolver) []codeMatcher {
	return []codeMatcher{parentheticCode, trailingCode, mappedCode(r)}
}

// inferCode runs the matchers in order. An unresolved code falls back to the
// display name.
func inferCode(matchers []codeMatcher, raw, name string) string {
	for _, match := range matchers {
		if code, ok := match(raw, name); ok {
			return code
		}
	}
	return name
}

func isAggregate(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range aggregatePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// ExtractRows reads committee rows from a located medal table in displayed order,
// stopping once limit rows are collected (limit <= 0 reads all rows). Ranks are
// left unset; any rank column in the table is only used to find the name cell.
// The second return value counts rejected rows.
func ExtractRows(table *goquery.Selection, limit int, r *noc.Resolver) ([]medal.Row, int) {
	matchers := codeMatchers(r)
	rows := make([]medal.Row, 0, max(limit, 0))
	skipped := 0

	bodyRows(table).EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if limit > 0 && len(rows) >= limit {
			return false
		}

		row, ok := extractRow(rowCells(tr), matchers, r)
		if !ok {
			skipped++
			return true
		}
		rows = append(rows, row)
		return true
	})

	return rows, skipped
}

func extractRow(cells []*goquery.Selection, matchers []codeMatcher, r *noc.Resolver) (medal.Row, bool) {
	if len(cells) < minCells {
		return medal.Row{}, false
	}

	idx := 0
	if reRank.MatchString(CleanText(cells[0].Text())) {
		idx = 1
	}

	nameCell := cells[idx]
	raw := noc.CleanName(CleanText(nameCell.Text()))

	name, ok := linkText(nameCell)
	if !ok {
		name = raw
	}
	name = noc.CleanName(name)
	if name == "" || isAggregate(name) {
		return medal.Row{}, false
	}

	counts := make([]int, 4)
	for i := range counts {
		if c := idx + 1 + i; c < len(cells) {
			counts[i] = ParseCount(cells[c].Text())
		}
	}

	code := inferCode(matchers, raw, name)

	return medal.Row{
		Code:   code,
		Name:   name,
		Gold:   counts[0],
		Silver: counts[1],
		Bronze: counts[2],
		Total:  counts[3],
		Flag:   r.FlagURL(code, name),
	}, true
}
