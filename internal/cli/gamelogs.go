package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/bref-scraper/internal/bref"
	"github.com/pfrederiksen/bref-scraper/internal/csvout"
)

// playerIDColumn is appended to combined output so rows remain
// attributable to a player downstream.
const playerIDColumn = "PlayerID"

// newGameLogsCmd creates the game-logs subcommand
func newGameLogsCmd() *cobra.Command {
	var (
		flagInputFile      string
		flagSeason         int
		flagLast           int
		flagAllGames       bool
		flagOutputDir      string
		flagCombinedOutput string
	)

	cmd := &cobra.Command{
		Use:   "game-logs PLAYER_ID...",
		Short: "Download the last N game logs for one or more players",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			playerIDs := append([]string{}, args...)
			if flagInputFile != "" {
				fromFile, err := readPlayerIDFile(flagInputFile)
				if err != nil {
					return err
				}
				playerIDs = append(playerIDs, fromFile...)
			}
			playerIDs = dedupe(playerIDs)
			if len(playerIDs) == 0 {
				return fmt.Errorf("no player ids provided")
			}

			client := newSiteClient()

			season := flagSeason
			if season == 0 {
				detected, err := client.DetectLatestSeason()
				if err != nil {
					return err
				}
				season = detected
			}

			lastN := flagLast
			if flagAllGames {
				lastN = 0
			}

			if flagCombinedOutput != "" {
				return runCombinedGameLogs(cmd, client, playerIDs, season, lastN, flagCombinedOutput)
			}

			for _, playerID := range playerIDs {
				tbl, err := client.GameLogs(playerID, season, lastN)
				if err != nil {
					return err
				}
				output := filepath.Join(flagOutputDir,
					fmt.Sprintf("%s_%s_%d.csv", playerID, gamesLabel(lastN), season))
				if err := csvout.Write(output, tbl.Headers, tbl.Rows); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %d games for %s (season %d) to %s\n",
					len(tbl.Rows), playerID, season, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagInputFile, "input-file", "",
		"Optional file with one player id per line to include")
	cmd.Flags().IntVar(&flagSeason, "season", 0,
		"NBA season year. Defaults to the latest season.")
	cmd.Flags().IntVar(&flagLast, "last", 15,
		"How many recent games to keep from the season")
	cmd.Flags().BoolVar(&flagAllGames, "all-games", false,
		"Fetch all games for the season (overrides --last)")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "game_logs",
		"Directory where CSV files will be written")
	cmd.Flags().StringVar(&flagCombinedOutput, "combined-output", "",
		"If provided, write all players' logs to a single CSV at this path")

	return cmd
}

// runCombinedGameLogs writes every player's logs to one CSV with an
// appended player id column. Column order follows the first player's
// table.
func runCombinedGameLogs(cmd *cobra.Command, client *bref.Client, playerIDs []string, season, lastN int, output string) error {
	var headers []string
	var records []map[string]string
	for _, playerID := range playerIDs {
		tbl, err := client.GameLogs(playerID, season, lastN)
		if err != nil {
			return err
		}
		if headers == nil {
			headers = append(append([]string{}, tbl.Headers...), playerIDColumn)
		}
		for _, record := range tbl.Records() {
			record[playerIDColumn] = playerID
			records = append(records, record)
		}
	}

	if err := csvout.WriteRecords(output, headers, records); err != nil {
		return err
	}

	label := "all"
	if lastN > 0 {
		label = fmt.Sprintf("last %d", lastN)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s games for %d players (season %d) to %s\n",
		label, len(playerIDs), season, output)
	return nil
}

// readPlayerIDFile reads one player id per line, skipping blank lines and
// lines starting with '#'.
func readPlayerIDFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input file not found: %s", path)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ids, nil
}

// dedupe removes duplicate ids while preserving order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool)
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}

// gamesLabel names how many games were requested, for output file names:
// "last15" or "all".
func gamesLabel(lastN int) string {
	if lastN == 0 {
		return "all"
	}
	return fmt.Sprintf("last%d", lastN)
}
