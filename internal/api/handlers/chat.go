package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/bullion-desk/internal/metrics"
	"github.com/donaldgifford/bullion-desk/pkg/chat"
	"github.com/donaldgifford/bullion-desk/pkg/logger"
)

// ChatHandler proxies chat completions to the AI provider so the API key
// never reaches the browser.
type ChatHandler struct {
	fwd chat.Forwarder
	log *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(fwd chat.Forwarder, log *slog.Logger) *ChatHandler {
	return &ChatHandler{fwd: fwd, log: logger.Component(log, "chat")}
}

type chatRequest struct {
	Messages  json.RawMessage `json:"messages"`
	System    json.RawMessage `json:"system"`
	MaxTokens int             `json:"max_tokens"`
}

// Chat handles POST /api/chat.
//
// @Summary Chat completion proxy
// @Description Forwards a message list and optional system prompt to the AI provider.
// @Description Provider errors keep their original status code.
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any "provider response"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} UpstreamErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var in chatRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&in); err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	if !isJSONArray(in.Messages) {
		metrics.ChatRequestsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "messages array is required"})
	}

	req := chat.Request{Messages: in.Messages, MaxTokens: in.MaxTokens}
	if !isJSONNull(in.System) {
		req.System = in.System
	}

	start := time.Now()
	res, err := h.fwd.Forward(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrMissingAPIKey) {
			metrics.ChatRequestsTotal.WithLabelValues("config_error").Inc()
			h.log.Error("chat rejected", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "AI API key is not configured"})
		}
		metrics.ChatRequestsTotal.WithLabelValues("network_error").Inc()
		h.log.Warn("chat provider unreachable", "error", err)
		return c.JSON(http.StatusInternalServerError, UpstreamErrorResponse{
			Error:   "failed to reach AI provider",
			Details: err.Error(),
		})
	}
	metrics.ChatUpstreamDuration.Observe(time.Since(start).Seconds())

	if !res.OK() {
		metrics.ChatRequestsTotal.WithLabelValues("upstream_error").Inc()
		h.log.Warn("chat provider returned error", "status", res.StatusCode)
		return c.JSON(res.StatusCode, UpstreamErrorResponse{
			Error:   "AI provider returned an error",
			Status:  res.StatusCode,
			Details: details(res.Body),
		})
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, res.Body)
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// details returns body as embedded JSON when it parses, else as a string.
func details(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
