package scraper

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/olympic-medals/internal/noc"
)

// ExtractMapping reads a committee code list. In each row the first cell holding a
// three-letter code gives the code and the following cell the committee name. Geo
// codes are filled in for the codes r can resolve.
func ExtractMapping(table *goquery.Selection, r *noc.Resolver) noc.Mapping {
	m := noc.NewMapping()

	bodyRows(table).Each(func(_ int, tr *goquery.Selection) {
		cells := rowCells(tr)

		for i := 0; i+1 < len(cells); i++ {
			code := CleanText(cells[i].Text())
			if !noc.IsCode(code) {
				continue
			}

			name, ok := linkText(cells[i+1])
			if !ok {
				name = CleanText(cells[i+1].Text())
			}
			name = noc.CleanName(name)
			if name == "" {
				return
			}

			m.NameToCode[name] = code
			if normalized := noc.NormalizeName(name); normalized != name {
				m.NameToCode[normalized] = code
			}
			if geo, ok := r.Geo(code, name); ok {
				m.CodeToGeo[code] = geo
			}
			return
		}
	})

	return m
}
