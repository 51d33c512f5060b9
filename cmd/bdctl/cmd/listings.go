package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func listingsCmd() *cobra.Command {
	var showSold bool

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Show the seller's merged listings",
		Long: "Show active listings merged from the inventory, analytics, and\n" +
			"marketing APIs. Sources that failed are listed after the table;\n" +
			"the rest of the view is still returned.",
		Example: `  bdctl listings --token "$EBAY_TOKEN"
  bdctl listings --sold`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Listings(cmd.Context())
			if err != nil {
				return explain(err)
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if resp.Username != "" {
				fmt.Printf("Seller: %s\n\n", resp.Username)
			}

			if showSold {
				if len(resp.SoldItems) == 0 {
					fmt.Println("No sold items found.")
				} else if err := printSoldTable(os.Stdout, resp.SoldItems); err != nil {
					return err
				}
			} else {
				if len(resp.Listings) == 0 {
					fmt.Println("No listings found.")
				} else if err := printListingsTable(os.Stdout, resp.Listings); err != nil {
					return err
				}
			}

			return printSourceErrors(os.Stdout, resp.Errors)
		},
	}
	cmd.Flags().BoolVar(&showSold, "sold", false, "show items sold from recent orders instead")

	return cmd
}
