package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pfrederiksen/bref-scraper/internal/bref"
)

func TestWriteLookupText(t *testing.T) {
	result := &LookupResult{
		Query: "james",
		Players: []bref.PlayerResult{
			{ID: "jamesle01", Name: "LeBron James", URL: "https://example.com/players/j/jamesle01.html"},
		},
	}

	var buf strings.Builder
	if err := WriteLookup(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteLookup failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "jamesle01: LeBron James") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestWriteLookupTextNoResults(t *testing.T) {
	var buf strings.Builder
	if err := WriteLookup(&buf, &LookupResult{Query: "nobody"}, FormatText); err != nil {
		t.Fatalf("WriteLookup failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No players found for: nobody") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWriteLookupTextCapsListing(t *testing.T) {
	result := &LookupResult{Query: "smith"}
	for i := 0; i < maxLookupResults+5; i++ {
		result.Players = append(result.Players, bref.PlayerResult{
			ID:   fmt.Sprintf("smith%02d", i),
			Name: "Smith",
			URL:  "https://example.com",
		})
	}

	var buf strings.Builder
	if err := WriteLookup(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteLookup failed: %v", err)
	}
	lines := strings.Count(buf.String(), "\n")
	if lines != maxLookupResults {
		t.Errorf("expected %d lines, got %d", maxLookupResults, lines)
	}
}

func TestWriteLookupJSON(t *testing.T) {
	result := &LookupResult{
		Query: "james",
		Players: []bref.PlayerResult{
			{ID: "jamesle01", Name: "LeBron James", URL: "https://example.com"},
		},
	}

	var buf strings.Builder
	if err := WriteLookup(&buf, result, FormatJSON); err != nil {
		t.Fatalf("WriteLookup failed: %v", err)
	}

	var decoded LookupResult
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Query != "james" || len(decoded.Players) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteLookupUnknownFormat(t *testing.T) {
	var buf strings.Builder
	if err := WriteLookup(&buf, &LookupResult{}, OutputFormat("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
