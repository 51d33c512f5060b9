package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/bullion-desk/internal/metrics"
	"github.com/donaldgifford/bullion-desk/pkg/tokencache"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

const (
	defaultTokenURL     = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultAuthorizeURL = "https://auth.ebay.com/oauth2/authorize"
	refreshBuffer       = 60 * time.Second

	appScope = "https://api.ebay.com/oauth/api_scope"
)

// UserScopes is the fixed scope set requested for seller tokens.
var UserScopes = []string{
	appScope,
	"https://api.ebay.com/oauth/api_scope/sell.inventory",
	"https://api.ebay.com/oauth/api_scope/sell.marketing",
	"https://api.ebay.com/oauth/api_scope/sell.analytics.readonly",
	"https://api.ebay.com/oauth/api_scope/sell.fulfillment",
	"https://api.ebay.com/oauth/api_scope/sell.account",
	"https://api.ebay.com/oauth/api_scope/commerce.identity.readonly",
}

// TokenError is a non-2xx response from the OAuth token endpoint.
type TokenError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf(
		"token request failed (status %d): %s - %s",
		e.StatusCode,
		e.Code,
		e.Description,
	)
}

// NeedsReauth reports whether the grant itself was rejected, meaning the
// user must go through the consent flow again.
func (e *TokenError) NeedsReauth() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnauthorized
}

// Message returns the most descriptive text eBay gave.
func (e *TokenError) Message() string {
	if e.Description != "" {
		return e.Description
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("token endpoint returned status %d", e.StatusCode)
}

type tokenResponse struct {
	AccessToken           string `json:"access_token"`
	ExpiresIn             int    `json:"expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int    `json:"refresh_token_expires_in"`
	TokenType             string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// postTokenForm runs one grant against the token endpoint with HTTP Basic
// client credentials.
func postTokenForm(
	ctx context.Context,
	client *http.Client,
	tokenURL, clientID, clientSecret string,
	form url.Values,
) (*tokenResponse, error) {
	grant := form.Get("grant_type")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(clientID + ":" + clientSecret),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := client.Do(req)
	if err != nil {
		metrics.EbayTokenExchangesTotal.WithLabelValues(grant, "network_error").Inc()
		return nil, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.EbayTokenExchangesTotal.WithLabelValues(grant, "rejected").Inc()
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return nil, &TokenError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("parsing token response: no access_token")
	}

	metrics.EbayTokenExchangesTotal.WithLabelValues(grant, "ok").Inc()
	return &tokenResp, nil
}

// OAuthTokenProvider implements TokenProvider using the eBay OAuth2
// client credentials flow. Tokens are held in a lock-free cache and treated
// as stale 60 seconds before expiry. Concurrent callers that all miss the
// cache each fetch a token; the last one written wins.
type OAuthTokenProvider struct {
	appID    string
	certID   string
	tokenURL string
	client   *http.Client
	scopes   string

	cache   *tokencache.Cache[string]
	nowFunc func() time.Time
}

// OAuthOption configures the OAuthTokenProvider.
type OAuthOption func(*OAuthTokenProvider)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.tokenURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.nowFunc = f
	}
}

// NewOAuthTokenProvider creates a new eBay application token provider.
func NewOAuthTokenProvider(
	appID, certID string,
	opts ...OAuthOption,
) *OAuthTokenProvider {
	p := &OAuthTokenProvider{
		appID:    appID,
		certID:   certID,
		tokenURL: defaultTokenURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		scopes:   appScope,
		cache:    tokencache.New[string](refreshBuffer),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns a valid application access token, fetching one if the
// cached token is missing or near expiry.
func (p *OAuthTokenProvider) Token(ctx context.Context) (string, error) {
	if tok, ok := p.cache.Get(p.nowFunc()); ok {
		return tok, nil
	}

	if p.appID == "" || p.certID == "" {
		return "", ErrMissingCredentials
	}

	resp, err := postTokenForm(ctx, p.client, p.tokenURL, p.appID, p.certID, url.Values{
		"grant_type": {"client_credentials"},
		"scope":      {p.scopes},
	})
	if err != nil {
		return "", err
	}

	p.cache.Set(
		resp.AccessToken,
		p.nowFunc().Add(time.Duration(resp.ExpiresIn)*time.Second),
	)

	return resp.AccessToken, nil
}

// UserOAuth implements UserAuth against eBay's consent page and token
// endpoint.
type UserOAuth struct {
	clientID     string
	clientSecret string
	ruName       string
	authorizeURL string
	tokenURL     string
	scopes       []string
	client       *http.Client
	nowFunc      func() time.Time
}

// UserOAuthOption configures the UserOAuth.
type UserOAuthOption func(*UserOAuth)

// WithAuthorizeURL overrides the consent page URL.
func WithAuthorizeURL(u string) UserOAuthOption {
	return func(o *UserOAuth) {
		o.authorizeURL = u
	}
}

// WithUserTokenURL overrides the token endpoint.
func WithUserTokenURL(u string) UserOAuthOption {
	return func(o *UserOAuth) {
		o.tokenURL = u
	}
}

// WithUserHTTPClient overrides the default HTTP client.
func WithUserHTTPClient(c *http.Client) UserOAuthOption {
	return func(o *UserOAuth) {
		o.client = c
	}
}

// WithUserNowFunc overrides the time function for testing.
func WithUserNowFunc(f func() time.Time) UserOAuthOption {
	return func(o *UserOAuth) {
		o.nowFunc = f
	}
}

// NewUserOAuth creates a UserOAuth for the given client credentials and
// RuName (the redirect registration name).
func NewUserOAuth(clientID, clientSecret, ruName string, opts ...UserOAuthOption) *UserOAuth {
	o := &UserOAuth{
		clientID:     clientID,
		clientSecret: clientSecret,
		ruName:       ruName,
		authorizeURL: defaultAuthorizeURL,
		tokenURL:     defaultTokenURL,
		scopes:       UserScopes,
		client:       &http.Client{Timeout: 15 * time.Second},
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AuthorizeURL builds the consent page URL for the fixed scope set.
func (o *UserOAuth) AuthorizeURL(state string) (string, error) {
	if o.clientID == "" || o.ruName == "" {
		return "", fmt.Errorf("%w: client id and redirect name are required", ErrMissingCredentials)
	}

	u, err := url.Parse(o.authorizeURL)
	if err != nil {
		return "", fmt.Errorf("parsing authorize URL: %w", err)
	}

	q := u.Query()
	q.Set("client_id", o.clientID)
	q.Set("redirect_uri", o.ruName)
	q.Set("response_type", "code")
	q.Set("scope", strings.Join(o.scopes, " "))
	if state != "" {
		q.Set("state", state)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// ExchangeCode trades an authorization code for an access/refresh pair.
func (o *UserOAuth) ExchangeCode(ctx context.Context, code string) (*domain.OAuthToken, error) {
	if err := o.checkCredentials(); err != nil {
		return nil, err
	}

	resp, err := postTokenForm(ctx, o.client, o.tokenURL, o.clientID, o.clientSecret, url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {o.ruName},
	})
	if err != nil {
		return nil, err
	}

	return o.toToken(resp), nil
}

// Refresh trades a refresh token for a new access token with the same
// scope set.
func (o *UserOAuth) Refresh(ctx context.Context, refreshToken string) (*domain.OAuthToken, error) {
	if err := o.checkCredentials(); err != nil {
		return nil, err
	}

	resp, err := postTokenForm(ctx, o.client, o.tokenURL, o.clientID, o.clientSecret, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"scope":         {strings.Join(o.scopes, " ")},
	})
	if err != nil {
		return nil, err
	}

	tok := o.toToken(resp)
	if tok.RefreshToken == "" {
		tok.RefreshToken = refreshToken
	}
	return tok, nil
}

func (o *UserOAuth) checkCredentials() error {
	if o.clientID == "" || o.clientSecret == "" || o.ruName == "" {
		return fmt.Errorf("%w: client id, client secret, and redirect name are required", ErrMissingCredentials)
	}
	return nil
}

func (o *UserOAuth) toToken(resp *tokenResponse) *domain.OAuthToken {
	return &domain.OAuthToken{
		AccessToken:           resp.AccessToken,
		RefreshToken:          resp.RefreshToken,
		ExpiresIn:             resp.ExpiresIn,
		RefreshTokenExpiresIn: resp.RefreshTokenExpiresIn,
		IssuedAt:              o.nowFunc(),
	}
}
