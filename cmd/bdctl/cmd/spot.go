package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func spotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spot",
		Short: "Show metal spot prices",
		Long: "Show current gold, silver, platinum, and palladium spot prices.\n" +
			"When the live feed is down the server answers with static fallback\n" +
			"prices and the reason it could not reach the feed.",
		Example: `  bdctl spot
  bdctl spot --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newClient().SpotPrices(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(s)
			}

			if s.IsFallback() {
				fmt.Fprintln(os.Stderr, "warning: live feed unavailable, showing fallback prices")
			}
			return printSpotTable(os.Stdout, s)
		},
	}
}
