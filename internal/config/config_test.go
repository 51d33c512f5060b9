package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
ai:
  api_key: sk-test
ebay:
  client_id: my-client-id
  client_secret: my-client-secret
  redirect_name: My_App-MyApp-Prod-abcdef
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "sk-test", cfg.AI.APIKey)
				assert.Equal(t, "my-client-id", cfg.Ebay.ClientID)
				assert.Equal(t, "my-client-secret", cfg.Ebay.ClientSecret)
				assert.Equal(t, "My_App-MyApp-Prod-abcdef", cfg.Ebay.RedirectName)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, "/", cfg.Server.AppRoot)
				assert.Equal(t, "https://api.anthropic.com/v1/messages", cfg.AI.Endpoint)
				assert.Equal(t, "claude-sonnet-4-20250514", cfg.AI.Model)
				assert.Equal(t, 1024, cfg.AI.MaxTokens)
				assert.Equal(t, "https://auth.ebay.com/oauth2/authorize", cfg.Ebay.AuthURL)
				assert.Equal(t, "https://api.ebay.com/identity/v1/oauth2/token", cfg.Ebay.TokenURL)
				assert.Equal(t, "https://api.ebay.com", cfg.Ebay.APIBaseURL)
				assert.Equal(t, "EBAY_US", cfg.Ebay.Marketplace)
				assert.Equal(t, 5, cfg.Ebay.MaxPages)
				assert.Equal(t, 200, cfg.Ebay.MaxOfferLookups)
				assert.InDelta(t, 5.0, cfg.Ebay.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 10, cfg.Ebay.RateLimit.Burst)
				assert.Equal(t, int64(5000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, "https://api.metals.live/v1/spot", cfg.Spot.FeedURL)
				assert.Equal(t, "metals.live", cfg.Spot.SourceLabel)
				assert.Equal(t, 10*time.Second, cfg.Spot.Timeout)
				assert.Zero(t, cfg.Spot.PollInterval)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
ai:
  api_key: "${TEST_BDESK_AI_KEY}"
ebay:
  client_id: "${TEST_BDESK_CLIENT_ID}"
  client_secret: "${TEST_BDESK_CLIENT_SECRET}"
  redirect_name: runame
`,
			envVars: map[string]string{
				"TEST_BDESK_AI_KEY":        "sk-from-env",
				"TEST_BDESK_CLIENT_ID":     "id-from-env",
				"TEST_BDESK_CLIENT_SECRET": "secret-from-env",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "sk-from-env", cfg.AI.APIKey)
				assert.Equal(t, "id-from-env", cfg.Ebay.ClientID)
				assert.Equal(t, "secret-from-env", cfg.Ebay.ClientSecret)
			},
		},
		{
			name: "unset env var is a missing credential, not a default",
			yaml: `
ai:
  api_key: "${TEST_BDESK_UNSET_KEY}"
ebay:
  client_id: id
  client_secret: secret
  redirect_name: runame
`,
			wantErr: "ai.api_key is required",
		},
		{
			name: "missing ai key",
			yaml: `
ebay:
  client_id: id
  client_secret: secret
  redirect_name: runame
`,
			wantErr: "ai.api_key is required",
		},
		{
			name: "missing ebay client id",
			yaml: `
ai:
  api_key: sk
ebay:
  client_secret: secret
  redirect_name: runame
`,
			wantErr: "ebay.client_id is required",
		},
		{
			name: "missing ebay client secret",
			yaml: `
ai:
  api_key: sk
ebay:
  client_id: id
  redirect_name: runame
`,
			wantErr: "ebay.client_secret is required",
		},
		{
			name: "missing redirect name",
			yaml: `
ai:
  api_key: sk
ebay:
  client_id: id
  client_secret: secret
`,
			wantErr: "ebay.redirect_name is required",
		},
		{
			name: "invalid log format",
			yaml: minimalYAML + `
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name: "negative poll interval",
			yaml: minimalYAML + `
spot:
  poll_interval: -5m
`,
			wantErr: "spot.poll_interval must not be negative",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
  app_root: /app/
ai:
  api_key: sk-full
  model: claude-haiku-4-20250514
  max_tokens: 2048
  timeout: 30s
ebay:
  client_id: id
  client_secret: secret
  redirect_name: runame
  state_secret: s3cret
  api_base_url: http://localhost:8089
  marketplace: EBAY_GB
  max_pages: 2
  max_offer_lookups: 40
  rate_limit:
    per_second: 2
    burst: 4
    daily_limit: 1000
spot:
  feed_url: http://localhost:8089/spot
  source_label: mock
  poll_interval: 5m
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "/app/", cfg.Server.AppRoot)
				assert.Equal(t, "claude-haiku-4-20250514", cfg.AI.Model)
				assert.Equal(t, 2048, cfg.AI.MaxTokens)
				assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
				assert.Equal(t, "s3cret", cfg.Ebay.StateSecret)
				assert.Equal(t, "http://localhost:8089", cfg.Ebay.APIBaseURL)
				assert.Equal(t, "EBAY_GB", cfg.Ebay.Marketplace)
				assert.Equal(t, 2, cfg.Ebay.MaxPages)
				assert.Equal(t, 40, cfg.Ebay.MaxOfferLookups)
				assert.Equal(t, int64(1000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, "mock", cfg.Spot.SourceLabel)
				assert.Equal(t, 5*time.Minute, cfg.Spot.PollInterval)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_ReportsEveryMissingCredential(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("logging:\n  level: info\n"))
	require.Error(t, err)

	for _, want := range []string{
		"ai.api_key is required",
		"ebay.client_id is required",
		"ebay.client_secret is required",
		"ebay.redirect_name is required",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestConfig_Credentials(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, Credentials{
		AIAPIKey:                "sk-test",
		MarketplaceClientID:     "my-client-id",
		MarketplaceClientSecret: "my-client-secret",
		MarketplaceRedirectName: "My_App-MyApp-Prod-abcdef",
	}, cfg.Credentials())
}
