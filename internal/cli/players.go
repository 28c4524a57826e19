package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/bref-scraper/internal/csvout"
)

// newPlayersCmd creates the players subcommand
func newPlayersCmd() *cobra.Command {
	var (
		flagSeason int
		flagOutput string
	)

	cmd := &cobra.Command{
		Use:   "players",
		Short: "Download per-game stats for all players in a season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newSiteClient()

			season := flagSeason
			if season == 0 {
				detected, err := client.DetectLatestSeason()
				if err != nil {
					return err
				}
				season = detected
			}

			tbl, err := client.PlayerPerGameTable(season)
			if err != nil {
				return err
			}

			output := flagOutput
			if output == "" {
				output = fmt.Sprintf("players_%d.csv", season)
			}
			if err := csvout.Write(output, tbl.Headers, tbl.Rows); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved per-game stats for season %d to %s\n", season, output)
			return nil
		},
	}

	cmd.Flags().IntVar(&flagSeason, "season", 0,
		"NBA season year (e.g. 2024 for the 2023-24 season). Defaults to the latest season.")
	cmd.Flags().StringVar(&flagOutput, "output", "",
		"Output CSV file. Defaults to players_<season>.csv")

	return cmd
}
