package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/bref-scraper/internal/bref"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// maxLookupResults caps the lookup listing; search pages can return many
// loosely-matching names.
const maxLookupResults = 20

// LookupResult contains player search data to be output
type LookupResult struct {
	Query   string              `json:"query"`
	Players []bref.PlayerResult `json:"players"`
}

// WriteLookup writes the lookup result in the specified format
func WriteLookup(w io.Writer, result *LookupResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeLookupJSON(w, result)
	case FormatText:
		return writeLookupText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeLookupJSON outputs results as JSON
func writeLookupJSON(w io.Writer, result *LookupResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeLookupText outputs results as a concise human-readable listing
func writeLookupText(w io.Writer, result *LookupResult) error {
	if len(result.Players) == 0 {
		_, err := fmt.Fprintf(w, "No players found for: %s\n", result.Query)
		return err
	}

	players := result.Players
	if len(players) > maxLookupResults {
		players = players[:maxLookupResults]
	}
	for _, p := range players {
		if _, err := fmt.Fprintf(w, "%s: %s (%s)\n", p.ID, p.Name, p.URL); err != nil {
			return err
		}
	}
	return nil
}
