package ebay_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/bullion-desk/internal/ebay"
)

// tokenJSON returns a valid eBay OAuth2 token response as JSON bytes.
func tokenJSON(token string) []byte {
	return []byte(fmt.Sprintf(
		`{"access_token":%q,"expires_in":7200,"token_type":"Application Access Token"}`,
		token,
	))
}

func TestOAuthTokenProvider_Token(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		wantToken  string
		errContain string
	}{
		{
			name: "successful token fetch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
				assert.Equal(t, "https://api.ebay.com/oauth/api_scope", r.FormValue("scope"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(tokenJSON("test-token-123"))
			},
			wantToken: "test-token-123",
		},
		{
			name: "server returns 401",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write(
					[]byte(
						`{"error":"invalid_client","error_description":"client authentication failed"}`,
					),
				)
			},
			wantErr:    true,
			errContain: "status 401",
		},
		{
			name: "server returns 500",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:    true,
			errContain: "status 500",
		},
		{
			name: "server returns invalid JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("not json"))
			},
			wantErr:    true,
			errContain: "parsing token response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			provider := ebay.NewOAuthTokenProvider(
				"test-app-id",
				"test-cert-id",
				ebay.WithTokenURL(srv.URL),
			)

			token, err := provider.Token(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestOAuthTokenProvider_MissingCredentials(t *testing.T) {
	t.Parallel()

	provider := ebay.NewOAuthTokenProvider("", "")
	_, err := provider.Token(context.Background())
	require.ErrorIs(t, err, ebay.ErrMissingCredentials)
}

func TestOAuthTokenProvider_TokenCaching(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			callCount.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(tokenJSON("cached-token"))
		}),
	)
	defer srv.Close()

	provider := ebay.NewOAuthTokenProvider(
		"test-app-id",
		"test-cert-id",
		ebay.WithTokenURL(srv.URL),
	)

	token1, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached-token", token1)
	assert.Equal(t, int32(1), callCount.Load())

	token2, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached-token", token2)
	assert.Equal(t, int32(1), callCount.Load())
}

func TestOAuthTokenProvider_TokenRefreshOnExpiry(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	now := time.Now()

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			callCount.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(tokenJSON("refreshed-token"))
		}),
	)
	defer srv.Close()

	currentTime := now
	var mu sync.Mutex

	provider := ebay.NewOAuthTokenProvider(
		"test-app-id",
		"test-cert-id",
		ebay.WithTokenURL(srv.URL),
		ebay.WithNowFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return currentTime
		}),
	)

	_, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), callCount.Load())

	// Inside the 60s margin the token is already stale.
	mu.Lock()
	currentTime = now.Add(7150 * time.Second)
	mu.Unlock()

	_, err = provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), callCount.Load())
}

func TestOAuthTokenProvider_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32

	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			callCount.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(tokenJSON("concurrent-token"))
		}),
	)
	defer srv.Close()

	provider := ebay.NewOAuthTokenProvider(
		"test-app-id",
		"test-cert-id",
		ebay.WithTokenURL(srv.URL),
	)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := provider.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "concurrent-token", token)
		}()
	}
	wg.Wait()

	// Racing misses may each fetch, but never more than once per caller.
	assert.GreaterOrEqual(t, callCount.Load(), int32(1))
	assert.LessOrEqual(t, callCount.Load(), int32(10))

	_, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, callCount.Load(), int32(10))
}

func TestUserOAuth_AuthorizeURL(t *testing.T) {
	t.Parallel()

	o := ebay.NewUserOAuth("client-id", "secret", "My_RuName")
	raw, err := o.AuthorizeURL("state-123")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "auth.ebay.com", u.Host)
	assert.Equal(t, "/oauth2/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "My_RuName", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, strings.Join(ebay.UserScopes, " "), q.Get("scope"))
}

func TestUserOAuth_AuthorizeURL_MissingConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		clientID string
		ruName   string
	}{
		{name: "missing client id", ruName: "ru"},
		{name: "missing runame", clientID: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ebay.NewUserOAuth(tt.clientID, "secret", tt.ruName).AuthorizeURL("")
			require.ErrorIs(t, err, ebay.ErrMissingCredentials)
		})
	}
}

func TestUserOAuth_ExchangeCode(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		assert.Equal(t, "the-code", r.FormValue("code"))
		assert.Equal(t, "My_RuName", r.FormValue("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "v^1.1#access",
			"expires_in": 7200,
			"refresh_token": "v^1.1#refresh",
			"refresh_token_expires_in": 47304000,
			"token_type": "User Access Token"
		}`))
	}))
	defer srv.Close()

	o := ebay.NewUserOAuth(
		"client-id", "secret", "My_RuName",
		ebay.WithUserTokenURL(srv.URL),
		ebay.WithUserNowFunc(func() time.Time { return issued }),
	)

	tok, err := o.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "v^1.1#access", tok.AccessToken)
	assert.Equal(t, "v^1.1#refresh", tok.RefreshToken)
	assert.Equal(t, 7200, tok.ExpiresIn)
	assert.Equal(t, 47304000, tok.RefreshTokenExpiresIn)
	assert.Equal(t, issued.UnixMilli(), tok.TokenTime())
	assert.Equal(t, issued.Add(2*time.Hour), tok.ExpiresAt())
}

func TestUserOAuth_Refresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		status          int
		body            string
		wantErr         bool
		wantStatus      int
		wantNeedsReauth bool
		wantMessage     string
		wantAccess      string
	}{
		{
			name:       "success keeps the caller's refresh token",
			status:     http.StatusOK,
			body:       `{"access_token":"new-access","expires_in":7200}`,
			wantAccess: "new-access",
		},
		{
			name:            "invalid grant needs reauth",
			status:          http.StatusBadRequest,
			body:            `{"error":"invalid_grant","error_description":"the provided authorization refresh token is invalid"}`,
			wantErr:         true,
			wantStatus:      http.StatusBadRequest,
			wantNeedsReauth: true,
			wantMessage:     "the provided authorization refresh token is invalid",
		},
		{
			name:            "unauthorized client needs reauth",
			status:          http.StatusUnauthorized,
			body:            `{"error":"invalid_client"}`,
			wantErr:         true,
			wantStatus:      http.StatusUnauthorized,
			wantNeedsReauth: true,
			wantMessage:     "invalid_client",
		},
		{
			name:        "server error is not a reauth",
			status:      http.StatusServiceUnavailable,
			body:        `oops`,
			wantErr:     true,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "token endpoint returned status 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
				assert.Equal(t, "old-refresh", r.FormValue("refresh_token"))
				assert.Equal(t, strings.Join(ebay.UserScopes, " "), r.FormValue("scope"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			o := ebay.NewUserOAuth("id", "secret", "ru", ebay.WithUserTokenURL(srv.URL))
			tok, err := o.Refresh(context.Background(), "old-refresh")

			if tt.wantErr {
				require.Error(t, err)
				var tokErr *ebay.TokenError
				require.True(t, errors.As(err, &tokErr))
				assert.Equal(t, tt.wantStatus, tokErr.StatusCode)
				assert.Equal(t, tt.wantNeedsReauth, tokErr.NeedsReauth())
				assert.Equal(t, tt.wantMessage, tokErr.Message())
				assert.Equal(t, tt.wantStatus, ebay.StatusCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, tok.AccessToken)
			assert.Equal(t, "old-refresh", tok.RefreshToken)
		})
	}
}

func TestUserOAuth_Refresh_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	o := ebay.NewUserOAuth("id", "secret", "ru", ebay.WithUserTokenURL(srv.URL))
	_, err := o.Refresh(context.Background(), "rt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing token request")
	assert.Equal(t, 0, ebay.StatusCode(err))
}

func TestStateSigner(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		s := ebay.NewStateSigner("s3cret")
		state, err := s.Issue()
		require.NoError(t, err)
		require.NotEmpty(t, state)
		require.NoError(t, s.Verify(state))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		t.Parallel()

		state, err := ebay.NewStateSigner("one").Issue()
		require.NoError(t, err)
		require.ErrorIs(t, ebay.NewStateSigner("two").Verify(state), ebay.ErrInvalidState)
	})

	t.Run("missing state rejected", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, ebay.NewStateSigner("s3cret").Verify(""), ebay.ErrInvalidState)
	})

	t.Run("disabled signer", func(t *testing.T) {
		t.Parallel()

		s := ebay.NewStateSigner("")
		assert.False(t, s.Enabled())
		state, err := s.Issue()
		require.NoError(t, err)
		assert.Empty(t, state)
		require.NoError(t, s.Verify("anything"))
	})
}
