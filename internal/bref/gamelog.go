package bref

import (
	"fmt"

	"github.com/pfrederiksen/bref-scraper/internal/logger"
	"github.com/pfrederiksen/bref-scraper/internal/table"
)

const (
	// gameLogFloorYear bounds the season walk-back; seasons at or before
	// this year are never tried implicitly.
	gameLogFloorYear = 2000

	// gameLogSeasonLookback is how many seasons before the requested one
	// may be tried when the requested season has no game-log table yet.
	gameLogSeasonLookback = 4
)

// gameLogTableIDs are the known game-log table identifiers in the order
// they should be tried: the historical id first, then the current one.
var gameLogTableIDs = []string{
	"pgl_basic",           // historical id
	"player_game_log_reg", // current regular season id
}

// GameLogError indicates that no season/table-id combination produced a
// game-log table for a player. It carries every season attempted and the
// last underlying extraction error.
type GameLogError struct {
	PlayerID string
	Seasons  []int
	Err      error
}

func (e *GameLogError) Error() string {
	return fmt.Sprintf("game log table was not found for player %q in seasons %v: %v",
		e.PlayerID, e.Seasons, e.Err)
}

func (e *GameLogError) Unwrap() error { return e.Err }

// GameLogs fetches a player's game-log table, trying the requested season
// first and then up to four prior seasons in case the latest season's logs
// are not yet published. Within each season the known table ids are tried
// in order and the first that extracts wins.
//
// When lastN is positive, only the trailing lastN rows are returned.
func (c *Client) GameLogs(playerID string, season, lastN int) (table.Table, error) {
	if playerID == "" {
		return table.Table{}, fmt.Errorf("player id is empty")
	}

	seasons := []int{season}
	for delta := 1; delta <= gameLogSeasonLookback; delta++ {
		if season-delta > gameLogFloorYear {
			seasons = append(seasons, season-delta)
		}
	}

	var lastErr error
	for _, year := range seasons {
		url := fmt.Sprintf("%s/players/%s/%s/gamelog/%d", c.baseURL, playerID[:1], playerID, year)
		page, err := c.fetcher.Get(url)
		if err != nil {
			return table.Table{}, err
		}

		tbl, err := firstSuccess(gameLogTableIDs, func(tableID string) (table.Table, error) {
			return table.Extract(page, tableID)
		})
		if err != nil {
			logger.Debug("No game-log table for season", logger.Fields{
				"player": playerID,
				"season": year,
				"reason": err.Error(),
			})
			lastErr = err
			continue
		}

		if lastN > 0 && lastN < len(tbl.Rows) {
			tbl.Rows = tbl.Rows[len(tbl.Rows)-lastN:]
		}
		logger.Info("Fetched game logs", logger.Fields{
			"player": playerID,
			"season": year,
			"rows":   len(tbl.Rows),
		})
		return tbl, nil
	}

	return table.Table{}, &GameLogError{PlayerID: playerID, Seasons: seasons, Err: lastErr}
}
