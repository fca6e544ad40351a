package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pfrederiksen/olympic-medals/internal/medal"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the payload summary in the specified format
func WriteOutput(w io.Writer, payload *medal.Payload, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, payload)
	case FormatText:
		return writeText(w, payload)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the payload exactly as written to medals.json
func writeJSON(w io.Writer, payload *medal.Payload) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// writeText outputs the leaderboard as a table
func writeText(w io.Writer, payload *medal.Payload) error {
	title := payload.Games
	if title == "" {
		title = payload.GamePage
	}
	fmt.Fprintf(w, "%s medal table (updated %s)\n", title, payload.UpdatedAt)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "NOC", "Name", "Gold", "Silver", "Bronze", "Total"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, r := range payload.Rows {
		table.Append([]string{
			strconv.Itoa(r.Rank),
			r.Code,
			r.Name,
			strconv.Itoa(r.Gold),
			strconv.Itoa(r.Silver),
			strconv.Itoa(r.Bronze),
			strconv.Itoa(r.Total),
		})
	}
	table.Render()

	if !payload.IsLiveData {
		if len(payload.Rows) > 0 && payload.Rows[0].Placeholder {
			fmt.Fprintln(w, "Placeholder data: the medal table could not be read.")
		} else {
			fmt.Fprintln(w, "No medals awarded yet.")
		}
	}
	fmt.Fprintf(w, "Source: %s\n", payload.SourceURL)

	return nil
}
