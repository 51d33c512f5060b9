// Package chat forwards conversations to a chat-completion provider and
// returns the provider's response untouched.
package chat

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrMissingAPIKey is returned when no provider API key is configured.
var ErrMissingAPIKey = errors.New("chat provider API key is not configured")

// Request is a conversation to forward. Messages and System are carried as
// raw JSON so they reach the provider byte for byte.
type Request struct {
	Messages  json.RawMessage
	System    json.RawMessage
	MaxTokens int
}

// Result is the provider's HTTP response, whatever its status.
type Result struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the provider returned a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Forwarder sends a Request to a provider. It returns an error only when no
// HTTP response was obtained; provider rejections are carried in Result.
type Forwarder interface {
	Forward(ctx context.Context, req Request) (*Result, error)
}
