package main

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/bref-scraper/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		if cli.ExitCodeFor(err) == cli.ExitNetworkError {
			fmt.Fprintf(os.Stderr, "Network error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Failed to scrape data: %v\n", err)
		}
		os.Exit(cli.ExitCodeFor(err))
	}
}
