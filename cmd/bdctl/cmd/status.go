package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Diagnose eBay connectivity",
		Long: "Call each eBay endpoint once with the access token and report\n" +
			"the status code, record count, and any error per endpoint.",
		Example: `  bdctl status --token "$EBAY_TOKEN"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Status(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if resp.Error != "" {
				return errors.New(resp.Error)
			}
			return printStatusTable(os.Stdout, resp)
		},
	}
}
