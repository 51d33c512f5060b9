package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// probePaths are polled by orchestrators every few seconds. A healthy probe
// is logged once; later successes are dropped until a failure is seen.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Responses with status 500 and above
// are logged at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		healthy = make(map[string]bool)
	)

	// shouldLog reports whether a probe result is a state change.
	shouldLog := func(path string, ok bool) bool {
		if _, probe := probePaths[path]; !probe {
			return true
		}
		mu.Lock()
		defer mu.Unlock()
		prev := healthy[path]
		healthy[path] = ok
		return !ok || !prev
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			if !shouldLog(path, status < 400) {
				return err
			}

			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelWarn
			}

			// Query strings are never logged: the OAuth callback carries
			// authorization codes in them.
			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"bytes_out", c.Response().Size,
				"remote_ip", c.RealIP(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

// RequestID returns the ID assigned by RequestLog, or "" outside it.
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
