package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/bullion-desk/internal/api/client"
)

func soldCmd() *cobra.Command {
	var (
		params    apiclient.SoldParams
		showItems bool
	)

	cmd := &cobra.Command{
		Use:   "sold <query>",
		Short: "Search sold listings and summarize prices",
		Long: "Search completed eBay sales and print price statistics with a\n" +
			"five-bucket histogram. Use --items to list the individual sales.",
		Example: `  # Recent sales of a coin
  bdctl sold "2024 silver eagle"

  # Used only, within a price band, last 60 days
  bdctl sold "1 oz gold buffalo" --condition used --min-price 2500 --max-price 3000 --days 60

  # Show each sale
  bdctl sold "maple leaf" --items --limit 20`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Query = strings.Join(args, " ")

			resp, err := newClient().SearchSold(cmd.Context(), &params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Items) == 0 {
				fmt.Println("No sales found.")
				return nil
			}

			if err := printSoldSummary(os.Stdout, resp); err != nil {
				return err
			}
			if showItems {
				fmt.Println()
				return printSoldTable(os.Stdout, resp.Items)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&params.MinPrice, "min-price", 0, "minimum sold price in USD")
	cmd.Flags().Float64Var(&params.MaxPrice, "max-price", 0, "maximum sold price in USD")
	cmd.Flags().StringVar(&params.Condition, "condition", "", "new, used, or an eBay condition id")
	cmd.Flags().StringVar(&params.CategoryID, "category", "", "eBay category id")
	cmd.Flags().IntVar(&params.Days, "days", 0, "look-back window in days (server default 30, max 90)")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum items (server default 50, max 100)")
	cmd.Flags().BoolVar(&showItems, "items", false, "list individual sales")

	return cmd
}
