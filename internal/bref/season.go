package bref

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pfrederiksen/bref-scraper/internal/fetch"
	"github.com/pfrederiksen/bref-scraper/internal/logger"
	"github.com/pfrederiksen/bref-scraper/internal/table"
)

const (
	// activeLeaguesTableID is the table on the league index listing
	// currently active leagues; its first column holds a season label.
	activeLeaguesTableID = "leagues_active"

	// perGameTableID is the league-wide per-game player stats table.
	perGameTableID = "per_game_stats"

	// seasonProbeLookback is how many extra years below the newest
	// candidate are probed when no discovered candidate validates.
	seasonProbeLookback = 5
)

// ErrSeasonNotFound indicates that no recent season with a populated
// per-game stats table could be located.
var ErrSeasonNotFound = errors.New("no recent season with per-game stats available")

// seasonLinkPattern matches season-specific links on the league index.
var seasonLinkPattern = regexp.MustCompile(`/leagues/NBA_(\d{4})\.html`)

// DetectLatestSeason finds the most recent season whose per-game stats
// table exists and parses.
//
// Candidate years come from season links on the league index page, or from
// the active-leagues table when no links are present. Candidates are probed
// in descending order; some very recent seasons have pages before their
// stats tables are populated, so the newest candidate is not trusted
// without validation.
func (c *Client) DetectLatestSeason() (int, error) {
	page, err := c.fetcher.Get(c.baseURL + "/leagues/")
	if err != nil {
		return 0, err
	}

	candidates := seasonLinkYears(page)
	if len(candidates) == 0 {
		candidates = c.activeLeagueYears(page)
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("no season candidates on league index: %w", ErrSeasonNotFound)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(candidates)))

	tried := make(map[int]bool)
	for _, year := range candidates {
		tried[year] = true
		err := c.validateSeason(year)
		if err == nil {
			logger.Info("Detected latest season", logger.Fields{"season": year})
			return year, nil
		}
		if isNetworkError(err) {
			return 0, err
		}
		logger.Debug("Season candidate failed validation", logger.Fields{
			"season": year,
			"reason": err.Error(),
		})
	}

	// Walk back a few extra years below the newest candidate in case the
	// index only advertises seasons that are not yet populated.
	newest := candidates[0]
	for delta := 1; delta <= seasonProbeLookback; delta++ {
		year := newest - delta
		if tried[year] {
			continue
		}
		err := c.validateSeason(year)
		if err == nil {
			logger.Info("Detected latest season", logger.Fields{"season": year})
			return year, nil
		}
		if isNetworkError(err) {
			return 0, err
		}
	}

	return 0, ErrSeasonNotFound
}

// PlayerPerGame fetches the league-wide per-game stats table for one
// season and returns the rows as header-keyed records.
func (c *Client) PlayerPerGame(season int) ([]map[string]string, error) {
	tbl, err := c.PlayerPerGameTable(season)
	if err != nil {
		return nil, err
	}
	return tbl.Records(), nil
}

// PlayerPerGameTable fetches and extracts the per-game stats table for one
// season, preserving column order.
func (c *Client) PlayerPerGameTable(season int) (table.Table, error) {
	url := fmt.Sprintf("%s/leagues/NBA_%d_per_game.html", c.baseURL, season)
	page, err := c.fetcher.Get(url)
	if err != nil {
		return table.Table{}, err
	}
	return table.Extract(page, perGameTableID)
}

// validateSeason probes whether the per-game stats table exists for year.
func (c *Client) validateSeason(year int) error {
	logger.IncrCounter("season.probes")
	_, err := c.PlayerPerGameTable(year)
	return err
}

// seasonLinkYears extracts candidate years from season links. The result
// is deduplicated but unordered.
func seasonLinkYears(page string) []int {
	seen := make(map[int]bool)
	var years []int
	for _, m := range seasonLinkPattern.FindAllStringSubmatch(page, -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	return years
}

// activeLeagueYears reads the first usable season label from the
// active-leagues table. Used when the index carries no season links.
func (c *Client) activeLeagueYears(page string) []int {
	tbl, err := table.Extract(page, activeLeaguesTableID)
	if err != nil {
		return nil
	}
	for _, row := range tbl.Rows {
		if year, ok := seasonEndYear(row[0]); ok {
			return []int{year}
		}
	}
	return nil
}

// seasonEndYear converts a season label to its end year. A label of the
// form "YYYY-YY" yields the end year with century rollover handling
// ("1999-00" is 2000); a bare year is used as-is.
func seasonEndYear(label string) (int, bool) {
	left, right, found := strings.Cut(label, "-")
	if !found {
		year, err := strconv.Atoi(strings.TrimSpace(label))
		if err != nil {
			return 0, false
		}
		return year, true
	}

	start, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, false
	}
	suffix, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, false
	}

	end := start/100*100 + suffix
	if end < start {
		end += 100
	}
	return end, true
}

// isNetworkError reports whether err is a transport failure, which is
// propagated immediately instead of being treated as a failed candidate.
func isNetworkError(err error) bool {
	var reqErr *fetch.RequestError
	return errors.As(err, &reqErr)
}
