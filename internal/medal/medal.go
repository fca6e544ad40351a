package medal

// Row represents one committee's standing in the medal table
type Row struct {
	Rank        int     `json:"rank"`
	Code        string  `json:"noc"` // Committee code, or the display name when it could not be inferred
	Name        string  `json:"name"`
	Gold        int     `json:"gold"`
	Silver      int     `json:"silver"`
	Bronze      int     `json:"bronze"`
	Total       int     `json:"total"`
	Flag        *string `json:"flag"`
	Placeholder bool    `json:"placeholder"`
}

// Medals returns the gold+silver+bronze sum. Total is read from the table and is
// not trusted for this.
func (r Row) Medals() int {
	return r.Gold + r.Silver + r.Bronze
}

// sameMedals reports whether two rows hold the same gold/silver/bronze triple
func sameMedals(a, b Row) bool {
	return a.Gold == b.Gold && a.Silver == b.Silver && a.Bronze == b.Bronze
}

// HasMedals reports whether any row has won at least one medal
func HasMedals(rows []Row) bool {
	for _, r := range rows {
		if r.Medals() > 0 {
			return true
		}
	}
	return false
}

// Payload is the document consumed by the display widget
type Payload struct {
	UpdatedAt  string `json:"updatedAt"`
	Source     string `json:"source"`
	SourceURL  string `json:"sourceUrl"`
	Games      string `json:"games"`
	GamePage   string `json:"gamePage"`
	IsLiveData bool   `json:"isLiveData"`
	Rows       []Row  `json:"rows"`
}
