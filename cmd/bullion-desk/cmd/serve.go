package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/bullion-desk/api/openapi"
	"github.com/donaldgifford/bullion-desk/internal/api/handlers"
	"github.com/donaldgifford/bullion-desk/internal/api/middleware"
	"github.com/donaldgifford/bullion-desk/internal/config"
	"github.com/donaldgifford/bullion-desk/internal/ebay"
	"github.com/donaldgifford/bullion-desk/internal/inventory"
	"github.com/donaldgifford/bullion-desk/internal/spot"
	"github.com/donaldgifford/bullion-desk/pkg/chat"
	"github.com/donaldgifford/bullion-desk/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and spot monitor",
	RunE:  runServe,
}

// server is the wired application: the HTTP router plus background work
// that shares its lifetime.
type server struct {
	echo    *echo.Echo
	monitor *spot.Monitor
	log     *slog.Logger
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	srv, err := newServer(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.run(ctx, fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
}

// newServer wires every upstream client, handler, and middleware from cfg.
func newServer(cfg *config.Config, log *slog.Logger) (*server, error) {
	creds := cfg.Credentials()

	rl := ebay.NewRateLimiter(cfg.Ebay.RateLimit.PerSecond, cfg.Ebay.RateLimit.Burst, cfg.Ebay.RateLimit.DailyLimit)
	ebayHTTP := &http.Client{Timeout: cfg.Ebay.Timeout}

	userAuth := ebay.NewUserOAuth(
		creds.MarketplaceClientID,
		creds.MarketplaceClientSecret,
		creds.MarketplaceRedirectName,
		ebay.WithAuthorizeURL(cfg.Ebay.AuthURL),
		ebay.WithUserTokenURL(cfg.Ebay.TokenURL),
		ebay.WithUserHTTPClient(ebayHTTP),
	)
	appTokens := ebay.NewOAuthTokenProvider(
		creds.MarketplaceClientID,
		creds.MarketplaceClientSecret,
		ebay.WithTokenURL(cfg.Ebay.TokenURL),
		ebay.WithHTTPClient(ebayHTTP),
	)
	finding := ebay.NewFindingClient(
		creds.MarketplaceClientID,
		appTokens,
		ebay.WithFindingURL(cfg.Ebay.FindingURL),
		ebay.WithFindingHTTPClient(ebayHTTP),
		ebay.WithFindingRateLimiter(rl),
	)
	sell := ebay.NewSellClient(
		ebay.WithAPIBaseURL(cfg.Ebay.APIBaseURL),
		ebay.WithIdentityURL(cfg.Ebay.IdentityURL),
		ebay.WithMarketplace(cfg.Ebay.Marketplace),
		ebay.WithSellHTTPClient(ebayHTTP),
		ebay.WithRateLimiter(rl),
	)
	aggregator := inventory.NewAggregator(sell, log,
		inventory.WithMaxPages(cfg.Ebay.MaxPages),
		inventory.WithMaxOfferLookups(cfg.Ebay.MaxOfferLookups),
	)

	forwarder := chat.NewAnthropicClient(
		creds.AIAPIKey,
		chat.WithEndpoint(cfg.AI.Endpoint),
		chat.WithModel(cfg.AI.Model),
		chat.WithAPIVersion(cfg.AI.APIVersion),
		chat.WithDefaultMaxTokens(cfg.AI.MaxTokens),
		chat.WithHTTPClient(&http.Client{Timeout: cfg.AI.Timeout}),
	)

	feed := spot.NewFeedClient(
		spot.WithFeedURL(cfg.Spot.FeedURL),
		spot.WithSourceLabel(cfg.Spot.SourceLabel),
		spot.WithHTTPClient(&http.Client{Timeout: cfg.Spot.Timeout}),
	)

	var monitor *spot.Monitor
	if cfg.Spot.PollInterval > 0 {
		m, err := spot.NewMonitor(feed, cfg.Spot.PollInterval, cfg.Spot.Timeout, logger.Component(log, "spot"))
		if err != nil {
			return nil, fmt.Errorf("creating spot monitor: %w", err)
		}
		monitor = m
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.HTTPErrorHandler = jsonErrorHandler(log)

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(map[string]handlers.ReadinessCheck{
		"credentials": credentialsCheck(creds),
		"ebay_quota": func(context.Context) error {
			if rl.Remaining() <= 0 {
				return ebay.ErrDailyLimitReached
			}
			return nil
		},
	})
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	oauth := handlers.NewOAuthHandler(userAuth, ebay.NewStateSigner(cfg.Ebay.StateSecret), cfg.Server.AppRoot, log)
	e.POST("/api/chat", handlers.NewChatHandler(forwarder, log).Chat)
	e.GET("/api/ebay/auth", oauth.Authorize)
	e.GET("/api/ebay/callback", oauth.Callback)

	handlers.UseFlatErrors()
	api := humaecho.New(e, huma.DefaultConfig("Bullion Desk API", Version))

	listings := handlers.NewListingsHandler(aggregator, log)
	handlers.RegisterOAuthRoutes(api, oauth)
	handlers.RegisterListingRoutes(api, listings)
	handlers.RegisterStatusRoutes(api, listings)
	handlers.RegisterSpotRoutes(api, handlers.NewSpotHandler(feed))
	handlers.RegisterSoldRoutes(api, handlers.NewSoldHandler(finding, log))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))
	openapi.RegisterRoutes(e, api.OpenAPI().Info.Title, "/openapi.json")

	return &server{echo: e, monitor: monitor, log: log}, nil
}

// run serves on addr until ctx is canceled, then drains in-flight requests.
func (s *server) run(ctx context.Context, addr string) error {
	if s.monitor != nil {
		s.monitor.Poll()
		s.monitor.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", "addr", addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.stopMonitor()
			return fmt.Errorf("starting server: %w", err)
		}
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.stopMonitor()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

func (s *server) stopMonitor() {
	if s.monitor == nil {
		return
	}
	select {
	case <-s.monitor.Stop().Done():
	case <-time.After(shutdownTimeout):
		s.log.Warn("spot monitor did not stop in time")
	}
}

// credentialsCheck fails readiness while any secret the handlers need is
// empty, e.g. when an ${ENV} reference expanded to nothing.
func credentialsCheck(creds config.Credentials) handlers.ReadinessCheck {
	return func(context.Context) error {
		var errs []error
		if creds.AIAPIKey == "" {
			errs = append(errs, errors.New("AI API key"))
		}
		if creds.MarketplaceClientID == "" {
			errs = append(errs, errors.New("eBay client id"))
		}
		if creds.MarketplaceClientSecret == "" {
			errs = append(errs, errors.New("eBay client secret"))
		}
		if creds.MarketplaceRedirectName == "" {
			errs = append(errs, errors.New("eBay redirect name"))
		}
		if len(errs) > 0 {
			return fmt.Errorf("missing credentials: %w", errors.Join(errs...))
		}
		return nil
	}
}

// jsonErrorHandler renders echo's own errors, such as unknown routes, as
// {"error": ...} so every failure the browser sees has one shape.
func jsonErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		} else {
			log.Error("unhandled error", "error", err, "path", c.Path())
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, handlers.ErrorResponse{Error: msg})
		}
		if err != nil {
			log.Error("writing error response", "error", err)
		}
	}
}
