package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat forwards a conversation through the proxy and returns the
// provider's response body unmodified.
func (c *Client) Chat(ctx context.Context, system string, messages []ChatMessage) (json.RawMessage, error) {
	payload := map[string]any{"messages": messages}
	if system != "" {
		payload["system"] = system
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	body, err := c.send(ctx, http.MethodPost, "/api/chat", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
