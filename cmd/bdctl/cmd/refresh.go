package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <refresh-token>",
		Short: "Exchange a refresh token for a new access token",
		Long: "Exchange an eBay refresh token for a new user access token. eBay\n" +
			"only returns a refresh token when it rotates the old one.",
		Example: `  export BDCTL_TOKEN=$(bdctl refresh "$EBAY_REFRESH_TOKEN")`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Refresh(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Println(resp.AccessToken)
			return nil
		},
	}
}
