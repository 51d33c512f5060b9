// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	AI      AIConfig      `yaml:"ai"`
	Ebay    EbayConfig    `yaml:"ebay"`
	Spot    SpotConfig    `yaml:"spot"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// AppRoot is where OAuth callbacks redirect the browser.
	AppRoot string `yaml:"app_root"`
}

// AIConfig defines the chat-completion provider settings.
type AIConfig struct {
	APIKey     string        `yaml:"api_key"`
	Endpoint   string        `yaml:"endpoint"`
	Model      string        `yaml:"model"`
	APIVersion string        `yaml:"api_version"`
	MaxTokens  int           `yaml:"max_tokens"`
	Timeout    time.Duration `yaml:"timeout"`
}

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	// RedirectName is the RuName registered for the OAuth redirect.
	RedirectName string `yaml:"redirect_name"`
	// StateSecret signs the OAuth state parameter. Empty disables the check.
	StateSecret string `yaml:"state_secret"`

	AuthURL     string          `yaml:"auth_url"`
	TokenURL    string          `yaml:"token_url"`
	APIBaseURL  string          `yaml:"api_base_url"`
	IdentityURL string          `yaml:"identity_url"`
	FindingURL  string          `yaml:"finding_url"`
	Marketplace string          `yaml:"marketplace"`
	MaxPages    int             `yaml:"max_pages"`
	Timeout     time.Duration   `yaml:"timeout"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`

	// MaxOfferLookups caps per-SKU offer calls per listings request. Each
	// one waits on rate_limit.per_second, so max_pages*100 SKUs at 5/s
	// would outlast server.write_timeout.
	MaxOfferLookups int `yaml:"max_offer_lookups"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// SpotConfig defines the spot price feed settings.
type SpotConfig struct {
	FeedURL      string        `yaml:"feed_url"`
	SourceLabel  string        `yaml:"source_label"`
	Timeout      time.Duration `yaml:"timeout"`
	PollInterval time.Duration `yaml:"poll_interval"` // 0 disables the monitor
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Credentials is the set of secrets the handlers need, injected at startup.
type Credentials struct {
	AIAPIKey                string
	MarketplaceClientID     string
	MarketplaceClientSecret string
	MarketplaceRedirectName string
}

// Credentials returns the credential set carried by the config.
func (c *Config) Credentials() Credentials {
	return Credentials{
		AIAPIKey:                c.AI.APIKey,
		MarketplaceClientID:     c.Ebay.ClientID,
		MarketplaceClientSecret: c.Ebay.ClientSecret,
		MarketplaceRedirectName: c.Ebay.RedirectName,
	}
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment variables in data, decodes it, applies defaults,
// and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	ApplyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills every unset optional field.
func ApplyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyAIDefaults(&cfg.AI)
	applyEbayDefaults(&cfg.Ebay)
	applySpotDefaults(&cfg.Spot)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 90 * time.Second
	}
	if s.AppRoot == "" {
		s.AppRoot = "/"
	}
}

func applyAIDefaults(a *AIConfig) {
	if a.Endpoint == "" {
		a.Endpoint = "https://api.anthropic.com/v1/messages"
	}
	if a.Model == "" {
		a.Model = "claude-sonnet-4-20250514"
	}
	if a.APIVersion == "" {
		a.APIVersion = "2023-06-01"
	}
	if a.MaxTokens == 0 {
		a.MaxTokens = 1024
	}
	if a.Timeout == 0 {
		a.Timeout = 60 * time.Second
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.AuthURL == "" {
		e.AuthURL = "https://auth.ebay.com/oauth2/authorize"
	}
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.APIBaseURL == "" {
		e.APIBaseURL = "https://api.ebay.com"
	}
	if e.IdentityURL == "" {
		e.IdentityURL = "https://apiz.ebay.com/commerce/identity/v1/user/"
	}
	if e.FindingURL == "" {
		e.FindingURL = "https://svcs.ebay.com/services/search/FindingService/v1"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if e.MaxPages == 0 {
		e.MaxPages = 5
	}
	if e.MaxOfferLookups == 0 {
		e.MaxOfferLookups = 200
	}
	if e.Timeout == 0 {
		e.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applySpotDefaults(s *SpotConfig) {
	if s.FeedURL == "" {
		s.FeedURL = "https://api.metals.live/v1/spot"
	}
	if s.SourceLabel == "" {
		s.SourceLabel = "metals.live"
	}
	if s.Timeout == 0 {
		s.Timeout = 10 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.AI.APIKey == "" {
		errs = append(errs, fmt.Errorf("ai.api_key is required"))
	}
	if cfg.Ebay.ClientID == "" {
		errs = append(errs, fmt.Errorf("ebay.client_id is required"))
	}
	if cfg.Ebay.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("ebay.client_secret is required"))
	}
	if cfg.Ebay.RedirectName == "" {
		errs = append(errs, fmt.Errorf("ebay.redirect_name is required"))
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}
	if cfg.AI.MaxTokens < 0 {
		errs = append(errs, fmt.Errorf("ai.max_tokens must not be negative"))
	}
	if cfg.Spot.PollInterval < 0 {
		errs = append(errs, fmt.Errorf("spot.poll_interval must not be negative"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
