package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// MedalKeywords identify the header row of a medal table
	MedalKeywords = []string{"gold", "silver", "bronze"}

	// MappingKeywords identify the header row of a committee code list
	MappingKeywords = []string{"code", "committee"}
)

// LocateTable returns the first table, in document order, whose first row
// contains every keyword (case-insensitive substring match)
func LocateTable(root *goquery.Selection, keywords ...string) (*goquery.Selection, bool) {
	var found *goquery.Selection

	root.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := tableRows(table)
		if rows.Length() == 0 {
			return true
		}

		header := strings.ToLower(CleanText(rows.First().Text()))
		for _, kw := range keywords {
			if !strings.Contains(header, strings.ToLower(kw)) {
				return true
			}
		}

		found = table
		return false
	})

	return found, found != nil
}

// tableRows returns the rows of table itself, leaving out rows of nested tables
func tableRows(table *goquery.Selection) *goquery.Selection {
	return table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(table)
	})
}

// bodyRows returns the rows of table after its header row
func bodyRows(table *goquery.Selection) *goquery.Selection {
	rows := tableRows(table)
	if rows.Length() < 2 {
		return rows.Slice(0, 0)
	}
	return rows.Slice(1, goquery.ToEnd)
}

// rowCells returns the header and data cells of a row
func rowCells(row *goquery.Selection) []*goquery.Selection {
	cells := make([]*goquery.Selection, 0, 8)
	row.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, cell)
	})
	return cells
}

// linkText returns the text of the first hyperlink in cell that has any text.
// Flag icons are often wrapped in links of their own.
func linkText(cell *goquery.Selection) (string, bool) {
	var text string
	cell.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text = CleanText(a.Text())
		return text == ""
	})
	return text, text != ""
}
