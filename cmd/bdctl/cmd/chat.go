package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/bullion-desk/internal/api/client"
)

func chatCmd() *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the AI assistant a question",
		Long: "Send a single user message through the chat proxy and print the\n" +
			"assistant's text. Use --output json for the provider's raw response.",
		Example: `  bdctl chat "What is a fair premium over spot for a 1 oz silver eagle?"
  bdctl chat --system "Answer in one sentence." "Is palladium up this week?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := newClient().Chat(cmd.Context(), system, []apiclient.ChatMessage{
				{Role: "user", Content: strings.Join(args, " ")},
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(raw)
			}

			fmt.Println(assistantText(raw))
			return nil
		},
	}
	cmd.Flags().StringVar(&system, "system", "", "system prompt")

	return cmd
}

// assistantText joins the text blocks of a messages response, or returns
// the raw body when it has none.
func assistantText(raw json.RawMessage) string {
	var resp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return string(raw)
	}

	var parts []string
	for _, c := range resp.Content {
		if c.Type == "text" {
			parts = append(parts, c.Text)
		}
	}
	if len(parts) == 0 {
		return string(raw)
	}
	return strings.Join(parts, "\n")
}
