package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/bref-scraper/internal/bref"
	"github.com/pfrederiksen/bref-scraper/internal/fetch"
	"github.com/pfrederiksen/bref-scraper/internal/logger"
)

const (
	ExitSuccess      = 0
	ExitNetworkError = 1
	ExitScrapeError  = 2
)

var flagVerbose bool

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bref-scraper",
		Short: "Download Basketball-Reference player stats and game logs",
		Long: `A CLI tool to download Basketball-Reference player data as CSV.
Supports season per-game stats, per-player game logs with automatic
season and table-id fallback, and player id lookup by name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newPlayersCmd())
	cmd.AddCommand(newGameLogsCmd())
	cmd.AddCommand(newLookupCmd())

	return cmd
}

// newSiteClient builds the production site client.
func newSiteClient() *bref.Client {
	return bref.New(fetch.New())
}

// ExitCodeFor maps an error to the process exit code: network failures and
// scrape failures signal differently.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var reqErr *fetch.RequestError
	if errors.As(err, &reqErr) {
		return ExitNetworkError
	}
	return ExitScrapeError
}
