package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newLookupCmd creates the lookup subcommand
func newLookupCmd() *cobra.Command {
	var flagFormat string

	cmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Look up Basketball-Reference player ids by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := OutputFormat(strings.ToLower(flagFormat))
			if format != FormatText && format != FormatJSON {
				return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
			}

			query := strings.Join(args, " ")
			results, err := newSiteClient().SearchPlayers(query)
			if err != nil {
				return err
			}

			return WriteLookup(cmd.OutOrStdout(), &LookupResult{
				Query:   query,
				Players: results,
			}, format)
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	return cmd
}
