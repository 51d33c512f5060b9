// Package cmd implements the CLI commands for bullion-desk.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bullion-desk",
	Short: "Backend for a precious-metals reseller's desk",
	Long: "An API server that proxies an AI assistant, the eBay seller APIs, and a metals spot " +
		"price feed for a browser front end, keeping credentials on the server.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(spotCommand())
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
