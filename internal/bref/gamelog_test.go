package bref

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestGameLogsSeasonFallback(t *testing.T) {
	// The requested season's page has no table matching either known id,
	// so the prior season with the historical id must be used.
	f := &fakeFetcher{pages: map[string]string{
		testBase + "/players/x/xxx01/gamelog/2024": `<p>Page exists but holds no game log yet.</p>`,
		testBase + "/players/x/xxx01/gamelog/2023": gameLogPage("pgl_basic", 20),
	}}

	tbl, err := NewWithBaseURL(f, testBase).GameLogs("xxx01", 2024, 15)
	if err != nil {
		t.Fatalf("GameLogs failed: %v", err)
	}
	if len(tbl.Rows) != 15 {
		t.Fatalf("expected trailing 15 rows, got %d", len(tbl.Rows))
	}
	// Trailing rows: the first kept row is row 6 of 20.
	if tbl.Rows[0][0] != "6" || tbl.Rows[14][0] != "20" {
		t.Errorf("expected rows 6..20, got first %v last %v", tbl.Rows[0], tbl.Rows[14])
	}

	want := []string{
		testBase + "/players/x/xxx01/gamelog/2024",
		testBase + "/players/x/xxx01/gamelog/2023",
	}
	if len(f.requested) != 2 || f.requested[0] != want[0] || f.requested[1] != want[1] {
		t.Errorf("requested %v, expected %v", f.requested, want)
	}
}

func TestGameLogsTableIDOrder(t *testing.T) {
	// When both ids are present the historical one wins; when only the
	// current id is present it is used.
	tests := []struct {
		name string
		page string
		want string // marker cell value of the winning table
	}{
		{
			name: "historical id preferred",
			page: gameLogPage("pgl_basic", 1) + gameLogPage("player_game_log_reg", 2),
			want: "1",
		},
		{
			name: "current id as fallback",
			page: gameLogPage("player_game_log_reg", 2),
			want: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{pages: map[string]string{
				testBase + "/players/x/xxx01/gamelog/2024": tt.page,
			}}

			tbl, err := NewWithBaseURL(f, testBase).GameLogs("xxx01", 2024, 0)
			if err != nil {
				t.Fatalf("GameLogs failed: %v", err)
			}
			last := tbl.Rows[len(tbl.Rows)-1]
			if last[0] != tt.want {
				t.Errorf("winning table last row = %v, expected marker %q", last, tt.want)
			}
		})
	}
}

func TestGameLogsAllRows(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		testBase + "/players/x/xxx01/gamelog/2024": gameLogPage("pgl_basic", 30),
	}}

	tbl, err := NewWithBaseURL(f, testBase).GameLogs("xxx01", 2024, 0)
	if err != nil {
		t.Fatalf("GameLogs failed: %v", err)
	}
	if len(tbl.Rows) != 30 {
		t.Errorf("lastN=0 should keep all rows, got %d", len(tbl.Rows))
	}
}

func TestGameLogsExhausted(t *testing.T) {
	pages := make(map[string]string)
	for year := 2020; year <= 2024; year++ {
		pages[testBase+"/players/x/xxx01/gamelog/"+strconv.Itoa(year)] = `<p>nothing here</p>`
	}
	f := &fakeFetcher{pages: pages}

	_, err := NewWithBaseURL(f, testBase).GameLogs("xxx01", 2024, 15)
	if err == nil {
		t.Fatal("expected error when every season/id combination fails")
	}

	var logErr *GameLogError
	if !errors.As(err, &logErr) {
		t.Fatalf("expected *GameLogError, got %T: %v", err, err)
	}
	wantSeasons := []int{2024, 2023, 2022, 2021, 2020}
	if len(logErr.Seasons) != len(wantSeasons) {
		t.Fatalf("seasons attempted = %v, expected %v", logErr.Seasons, wantSeasons)
	}
	for i, s := range wantSeasons {
		if logErr.Seasons[i] != s {
			t.Errorf("seasons[%d] = %d, expected %d", i, logErr.Seasons[i], s)
		}
	}
	// The message names every season attempted for diagnostics.
	for _, s := range wantSeasons {
		if !strings.Contains(err.Error(), strconv.Itoa(s)) {
			t.Errorf("error message should mention season %d: %v", s, err)
		}
	}
	if logErr.Err == nil {
		t.Error("expected the last extraction error to be retained")
	}
}

func TestGameLogsHistoricalFloor(t *testing.T) {
	// A 2002 request may only walk back to 2001; seasons at or before
	// 2000 are never tried.
	f := &fakeFetcher{pages: map[string]string{
		testBase + "/players/x/xxx01/gamelog/2002": `<p>no table</p>`,
		testBase + "/players/x/xxx01/gamelog/2001": `<p>no table</p>`,
	}}

	_, err := NewWithBaseURL(f, testBase).GameLogs("xxx01", 2002, 0)
	var logErr *GameLogError
	if !errors.As(err, &logErr) {
		t.Fatalf("expected *GameLogError, got %v", err)
	}
	if len(logErr.Seasons) != 2 || logErr.Seasons[0] != 2002 || logErr.Seasons[1] != 2001 {
		t.Errorf("seasons attempted = %v, expected [2002 2001]", logErr.Seasons)
	}
}

func TestGameLogsEmptyPlayerID(t *testing.T) {
	f := &fakeFetcher{}
	if _, err := NewWithBaseURL(f, testBase).GameLogs("", 2024, 0); err == nil {
		t.Error("expected error for empty player id")
	}
}
