package cmd

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/bullion-desk/internal/config"
	"github.com/donaldgifford/bullion-desk/internal/spot"
)

func spotCommand() *cobra.Command {
	var (
		feedURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "spot",
		Short: "Fetch spot prices once and print them as JSON",
		Long: "Fetch the spot feed once, exactly as the server does, and print the result.\n" +
			"Needs no credentials. Prints the fallback prices when the feed fails.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			if feedURL == "" {
				feedURL = cfg.Spot.FeedURL
			}

			client := spot.NewFeedClient(
				spot.WithFeedURL(feedURL),
				spot.WithSourceLabel(cfg.Spot.SourceLabel),
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(client.Fetch(ctx))
		},
	}
	cmd.Flags().StringVar(&feedURL, "feed-url", "", "spot feed URL (default from built-in config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	return cmd
}
