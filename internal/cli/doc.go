// Package cli implements the command-line interface for bref-scraper.
//
// The cli package provides the Cobra-based CLI with three subcommands:
// players downloads a season's per-game stats, game-logs downloads recent
// game logs for one or more players, and lookup searches player ids by
// name. Errors are classified into a network kind and a scrape kind with
// distinct exit codes so callers can tell a connectivity problem from a
// page-structure problem.
package cli
