// Package client provides a thin HTTP client for the bullion-desk API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is a thin HTTP client for the bullion-desk API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the eBay user access token sent as a bearer token on
// requests that act on the seller's account.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// Error is a non-2xx response from the API.
type Error struct {
	StatusCode   int
	Message      string
	NeedsRefresh bool
	NeedsReauth  bool
	Body         string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Body)
}

// NeedsRefresh reports whether err says the access token should be
// refreshed before retrying.
func NeedsRefresh(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.NeedsRefresh
}

// get performs a GET request and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, dst)
}

// post performs a POST request with a JSON body and decodes the response into dst.
func (c *Client) post(ctx context.Context, path string, body, dst any) error {
	return c.do(ctx, http.MethodPost, path, body, dst)
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	respBody, err := c.send(ctx, method, path, bodyReader)
	if err != nil {
		return err
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// send issues the request and returns the raw response body of a 2xx reply.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return nil, fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status, Body: strings.TrimSpace(string(body))}

	var payload struct {
		Error        string `json:"error"`
		NeedsRefresh bool   `json:"needsRefresh"`
		NeedsReauth  bool   `json:"needsReauth"`
	}
	if json.Unmarshal(body, &payload) == nil {
		e.Message = payload.Error
		e.NeedsRefresh = payload.NeedsRefresh
		e.NeedsReauth = payload.NeedsReauth
	}
	return e
}

func isConnectionRefused(err error) bool {
	return strings.Contains(err.Error(), "connection refused")
}
