// Package handlers implements HTTP handlers for the bullion-desk API.
package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
)

// ReadinessCheck reports whether a dependency the server needs is usable.
type ReadinessCheck func(ctx context.Context) error

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	checks map[string]ReadinessCheck
}

// NewHealthHandler creates a new HealthHandler. Readyz fails when any of
// the named checks fails.
func NewHealthHandler(checks map[string]ReadinessCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 if every readiness check passes, 503 otherwise.
//
// @Summary Readiness check
// @Description Returns 200 if every readiness check passes, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} map[string]any
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	var failed []string
	for name, check := range h.checks {
		if err := check(c.Request().Context()); err != nil {
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		sort.Strings(failed)
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "unavailable",
			"failed": failed,
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
