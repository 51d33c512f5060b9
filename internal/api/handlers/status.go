package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/bullion-desk/internal/inventory"
)

// StatusOutput is the always-200 diagnostics payload.
type StatusOutput struct {
	Body struct {
		inventory.StatusReport
		Error string `json:"error,omitempty" doc:"Set when the request could not be diagnosed at all"`
	}
}

// Status probes each eBay endpoint once with the caller's token.
func (h *ListingsHandler) Status(ctx context.Context, in *BearerInput) (*StatusOutput, error) {
	resp := &StatusOutput{}

	token := bearerToken(in.Authorization)
	report := h.svc.Status(ctx, token)
	if report != nil {
		resp.Body.StatusReport = *report
	}
	if token == "" {
		resp.Body.Error = "missing bearer token"
	}
	if resp.Body.Endpoints == nil {
		resp.Body.Endpoints = map[string]inventory.EndpointReport{}
	}

	return resp, nil
}

// RegisterStatusRoutes registers the diagnostics endpoint.
func RegisterStatusRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ebay-status",
		Method:      http.MethodGet,
		Path:        "/api/ebay/status",
		Summary:     "Diagnose eBay connectivity",
		Description: "Calls each eBay endpoint once and reports status, record count, and a sample. " +
			"Always returns 200; failures are reported per endpoint.",
		Tags: []string{"ebay"},
	}, h.Status)
}
