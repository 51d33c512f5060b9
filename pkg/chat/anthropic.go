package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAnthropicURL     = "https://api.anthropic.com/v1/messages"
	defaultAnthropicModel   = "claude-sonnet-4-20250514"
	defaultAnthropicVersion = "2023-06-01"
	defaultMaxTokens        = 1024
)

// AnthropicClient implements Forwarder using the Anthropic Messages API.
type AnthropicClient struct {
	apiKey     string
	model      string
	endpoint   string
	apiVersion string
	maxTokens  int
	client     *http.Client
}

// AnthropicOption configures the AnthropicClient.
type AnthropicOption func(*AnthropicClient)

// WithEndpoint overrides the default API endpoint.
func WithEndpoint(url string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.endpoint = url
	}
}

// WithModel overrides the default model.
func WithModel(model string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.model = model
	}
}

// WithAPIVersion overrides the anthropic-version header.
func WithAPIVersion(v string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.apiVersion = v
	}
}

// WithDefaultMaxTokens sets max_tokens for requests that omit it.
func WithDefaultMaxTokens(n int) AnthropicOption {
	return func(c *AnthropicClient) {
		c.maxTokens = n
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) AnthropicOption {
	return func(c *AnthropicClient) {
		c.client = hc
	}
}

// NewAnthropicClient creates a new Anthropic Messages API client.
func NewAnthropicClient(apiKey string, opts ...AnthropicOption) *AnthropicClient {
	c := &AnthropicClient{
		apiKey:     apiKey,
		model:      defaultAnthropicModel,
		endpoint:   defaultAnthropicURL,
		apiVersion: defaultAnthropicVersion,
		maxTokens:  defaultMaxTokens,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier sent with every request.
func (c *AnthropicClient) Model() string {
	return c.model
}

type anthropicRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    json.RawMessage `json:"system,omitempty"`
	Messages  json.RawMessage `json:"messages"`
}

// Forward posts req to the Messages API and returns the raw response.
func (c *AnthropicClient) Forward(ctx context.Context, req Request) (*Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages:  req.Messages,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", c.apiVersion)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling anthropic API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return &Result{StatusCode: resp.StatusCode, Body: respBody}, nil
}
