// Package cmd implements the bdctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/bullion-desk/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "bdctl",
		Short: "CLI client for Bullion Desk",
		Long: "bdctl is a command-line client for the Bullion Desk API.\n" +
			"It shows spot prices, searches sold listings, and inspects the\n" +
			"eBay seller account behind your access token.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.bdctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("token", "", "eBay user access token (or BDCTL_TOKEN)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token")))

	rootCmd.AddCommand(spotCmd())
	rootCmd.AddCommand(soldCmd())
	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(refreshCmd())
	rootCmd.AddCommand(chatCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bdctl")
	}

	viper.SetEnvPrefix("BDCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"), apiclient.WithToken(viper.GetString("token")))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

// explain adds a hint to errors the user can act on.
func explain(err error) error {
	if apiclient.NeedsRefresh(err) {
		return fmt.Errorf("%w\nhint: run `bdctl refresh <refresh-token>` and pass the new token with --token", err)
	}
	return err
}
