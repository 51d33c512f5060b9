package handlers

import (
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
)

var _ huma.StatusError = (*APIError)(nil)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// UpstreamErrorResponse is returned when a proxied provider rejects a call.
// Details carries the provider's body verbatim.
type UpstreamErrorResponse struct {
	Error   string `json:"error"             example:"AI provider returned an error"`
	Status  int    `json:"status,omitempty"  example:"429"`
	Details any    `json:"details,omitempty"`
}

// APIError is a flat JSON error body that carries its own HTTP status.
// Huma handlers return it so clients get {"error": ...} rather than a
// problem document.
type APIError struct {
	status       int
	Message      string `json:"error"                  example:"eBay token expired"`
	NeedsRefresh bool   `json:"needsRefresh,omitempty" example:"true"  doc:"Retry after refreshing the access token"`
	NeedsReauth  *bool  `json:"needsReauth,omitempty"  example:"false" doc:"The user must go through consent again"`
}

func newAPIError(status int, msg string) *APIError {
	return &APIError{status: status, Message: msg}
}

func (e *APIError) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int { return e.status }

var flatErrorsOnce sync.Once

// UseFlatErrors makes the errors huma raises itself, such as request
// validation failures, use the APIError body. It affects every huma API in
// the process.
func UseFlatErrors() {
	flatErrorsOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			details := make([]string, 0, len(errs))
			for _, err := range errs {
				if err != nil {
					details = append(details, err.Error())
				}
			}
			if len(details) > 0 {
				msg += ": " + strings.Join(details, "; ")
			}
			return newAPIError(status, msg)
		}
	})
}
