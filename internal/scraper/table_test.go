package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}
	return doc
}

func TestLocateTable(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		keywords  []string
		wantFound bool
		wantID    string
	}{
		{
			name: "medal headers",
			html: `<table id="a"><tr><th>Sport</th><th>Gold</th></tr></table>
				<table id="b"><tr><th>Rank</th><th>NOC</th><th>Gold</th><th>Silver</th><th>Bronze</th><th>Total</th></tr></table>`,
			keywords:  MedalKeywords,
			wantFound: true,
			wantID:    "b",
		},
		{
			name: "first match in document order",
			html: `<table id="a"><tr><th>GOLD</th><th>SILVER</th><th>BRONZE</th></tr></table>
				<table id="b"><tr><th>Gold</th><th>Silver</th><th>Bronze</th></tr></table>`,
			keywords:  MedalKeywords,
			wantFound: true,
			wantID:    "a",
		},
		{
			name:      "keywords only in body rows",
			html:      `<table id="a"><tr><th>Name</th></tr><tr><td>Gold Silver Bronze</td></tr></table>`,
			keywords:  MedalKeywords,
			wantFound: false,
		},
		{
			name:      "mapping headers",
			html:      `<table id="a"><tr><th>Code</th><th>National Olympic Committee</th></tr></table>`,
			keywords:  MappingKeywords,
			wantFound: true,
			wantID:    "a",
		},
		{
			name:      "no tables",
			html:      `<p>No medals yet</p>`,
			keywords:  MedalKeywords,
			wantFound: false,
		},
		{
			name:      "empty table",
			html:      `<table id="a"></table>`,
			keywords:  MedalKeywords,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, tt.html)

			table, found := LocateTable(doc.Selection, tt.keywords...)
			if found != tt.wantFound {
				t.Fatalf("LocateTable() found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				if table != nil {
					t.Error("LocateTable() returned a table with found = false")
				}
				return
			}
			if id, _ := table.Attr("id"); id != tt.wantID {
				t.Errorf("LocateTable() picked table %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestTableRows_SkipsNestedTables(t *testing.T) {
	doc := mustDoc(t, `<table id="outer">
		<tr><th>Gold</th></tr>
		<tr><td><table><tr><td>inner</td></tr></table></td></tr>
		<tr><td>last</td></tr>
	</table>`)

	rows := tableRows(doc.Find("#outer"))
	if rows.Length() != 3 {
		t.Errorf("tableRows() = %d rows, want 3", rows.Length())
	}
}

func TestLinkText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		wantText string
		wantOK   bool
	}{
		{
			name:     "skips image link",
			html:     `<table><tr><th id="c"><a href="/wiki/File:Flag.svg"><img src="x.png"></a> <a href="/wiki/Norway">Norway</a></th></tr></table>`,
			wantText: "Norway",
			wantOK:   true,
		},
		{
			name:   "no links",
			html:   `<table><tr><th id="c">Norway</th></tr></table>`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, tt.html)
			text, ok := linkText(doc.Find("#c"))
			if ok != tt.wantOK || text != tt.wantText {
				t.Errorf("linkText() = %q, %v, want %q, %v", text, ok, tt.wantText, tt.wantOK)
			}
		})
	}
}
