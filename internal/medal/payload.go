package medal

import (
	"time"
)

const (
	// TimestampLayout renders UpdatedAt, e.g. "09-Feb-2026 07:45 PM"
	TimestampLayout = "02-Jan-2006 03:04 PM"

	DefaultSource = "Wikipedia"
)

// Committee is an entry of the placeholder roster
type Committee struct {
	Code string
	Name string
}

// Roster lists the committees cycled through when placeholder rows are needed
var Roster = []Committee{
	{Code: "USA", Name: "United States"},
	{Code: "NOR", Name: "Norway"},
	{Code: "GER", Name: "Germany"},
	{Code: "ITA", Name: "Italy"},
	{Code: "CAN", Name: "Canada"},
	{Code: "SUI", Name: "Switzerland"},
	{Code: "AUT", Name: "Austria"},
	{Code: "SWE", Name: "Sweden"},
	{Code: "NED", Name: "Netherlands"},
	{Code: "JPN", Name: "Japan"},
}

// Options controls payload assembly
type Options struct {
	TopN       int
	RosterSize int // Number of Roster entries cycled through; clamped to [1, len(Roster)]
	Source     string
	SourceURL  string
	Games      string
	GamePage   string
	Location   *time.Location
	// FlagURL resolves the flag of a placeholder committee. Optional.
	FlagURL func(code, name string) *string
}

// Placeholders builds n zero-medal rows cycling through the first rosterSize
// committees of Roster
func Placeholders(n, rosterSize int, flagURL func(code, name string) *string) []Row {
	if rosterSize < 1 || rosterSize > len(Roster) {
		rosterSize = len(Roster)
	}

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		c := Roster[i%rosterSize]
		row := Row{
			Code:        c.Code,
			Name:        c.Name,
			Placeholder: true,
		}
		if flagURL != nil {
			row.Flag = flagURL(c.Code, c.Name)
		}
		rows = append(rows, row)
	}

	AssignRanks(rows)
	return rows
}

// Assemble builds the widget payload from the extracted rows.
//
// Rows are used only when exactly opts.TopN of them were extracted; anything else
// (no table, malformed table, too few rows) is replaced by placeholders. IsLiveData
// is true only when the extracted rows are used and at least one has a medal.
func Assemble(rows []Row, opts Options, now time.Time) *Payload {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	source := opts.Source
	if source == "" {
		source = DefaultSource
	}

	payload := &Payload{
		UpdatedAt: now.In(loc).Format(TimestampLayout),
		Source:    source,
		SourceURL: opts.SourceURL,
		Games:     opts.Games,
		GamePage:  opts.GamePage,
	}

	if opts.TopN > 0 && len(rows) == opts.TopN {
		out := make([]Row, len(rows))
		copy(out, rows)
		AssignRanks(out)
		payload.Rows = out
		payload.IsLiveData = HasMedals(out)
		return payload
	}

	payload.Rows = Placeholders(opts.TopN, opts.RosterSize, opts.FlagURL)
	return payload
}
