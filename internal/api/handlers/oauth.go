package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/bullion-desk/internal/ebay"
	"github.com/donaldgifford/bullion-desk/pkg/logger"
)

// OAuthHandler runs the eBay user consent flow. Tokens are handed to the
// browser and never kept server side.
type OAuthHandler struct {
	auth    ebay.UserAuth
	state   *ebay.StateSigner
	appRoot string
	log     *slog.Logger
}

// NewOAuthHandler creates a new OAuthHandler. Callbacks redirect to
// appRoot. A nil or disabled state signer skips state verification.
func NewOAuthHandler(auth ebay.UserAuth, state *ebay.StateSigner, appRoot string, log *slog.Logger) *OAuthHandler {
	if appRoot == "" {
		appRoot = "/"
	}
	return &OAuthHandler{
		auth:    auth,
		state:   state,
		appRoot: appRoot,
		log:     logger.Component(log, "oauth"),
	}
}

// Authorize handles GET /api/ebay/auth.
//
// @Summary Start eBay consent
// @Description Redirects the browser to the eBay consent page with the seller scopes.
// @Tags ebay
// @Success 302
// @Failure 500 {object} ErrorResponse
// @Router /api/ebay/auth [get]
func (h *OAuthHandler) Authorize(c echo.Context) error {
	state, err := h.state.Issue()
	if err != nil {
		h.log.Error("issuing oauth state", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not start eBay authorization"})
	}
	if state == "" {
		state = uuid.NewString()
	}

	target, err := h.auth.AuthorizeURL(state)
	if err != nil {
		if errors.Is(err, ebay.ErrMissingCredentials) {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "eBay client id or redirect name is not configured",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	return c.Redirect(http.StatusFound, target)
}

// Callback handles GET /api/ebay/callback. Every outcome is a redirect to
// the app root, carrying either the tokens or an ebay_error parameter.
//
// @Summary eBay consent callback
// @Description Exchanges the authorization code and redirects back to the app.
// @Tags ebay
// @Param code query string false "Authorization code"
// @Param state query string false "State issued by /api/ebay/auth"
// @Param error query string false "Error code from eBay"
// @Param error_description query string false "Error description from eBay"
// @Success 302
// @Router /api/ebay/callback [get]
func (h *OAuthHandler) Callback(c echo.Context) error {
	if e := c.QueryParam("error"); e != "" {
		msg := c.QueryParam("error_description")
		if msg == "" {
			msg = e
		}
		h.log.Info("consent declined", "error", e)
		return h.redirect(c, url.Values{"ebay_error": {msg}})
	}

	code := c.QueryParam("code")
	if code == "" {
		return h.redirect(c, url.Values{"ebay_error": {"missing authorization code"}})
	}

	if err := h.state.Verify(c.QueryParam("state")); err != nil {
		h.log.Warn("rejected oauth state", "error", err)
		return h.redirect(c, url.Values{"ebay_error": {"invalid authorization state, please try again"}})
	}

	tok, err := h.auth.ExchangeCode(c.Request().Context(), code)
	if err != nil {
		h.log.Warn("code exchange failed", "error", err)
		return h.redirect(c, url.Values{"ebay_error": {exchangeMessage(err)}})
	}

	return h.redirect(c, url.Values{
		"ebay_access_token":  {tok.AccessToken},
		"ebay_refresh_token": {tok.RefreshToken},
		"ebay_expires_in":    {strconv.Itoa(tok.ExpiresIn)},
		"ebay_token_time":    {strconv.FormatInt(tok.TokenTime(), 10)},
	})
}

func (h *OAuthHandler) redirect(c echo.Context, params url.Values) error {
	u, err := url.Parse(h.appRoot)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	for k, v := range params {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return c.Redirect(http.StatusFound, u.String())
}

func exchangeMessage(err error) string {
	var tokErr *ebay.TokenError
	switch {
	case errors.As(err, &tokErr):
		return tokErr.Message()
	case errors.Is(err, ebay.ErrMissingCredentials):
		return "eBay credentials are not configured"
	default:
		return "token exchange failed: " + err.Error()
	}
}

// RefreshInput is the request body for the token refresh endpoint.
type RefreshInput struct {
	Body struct {
		RefreshToken string `json:"refresh_token,omitempty" doc:"Refresh token from the consent callback"`
	} `required:"false"`
}

// RefreshOutput is the response for the token refresh endpoint.
type RefreshOutput struct {
	Body struct {
		Success      bool   `json:"success"`
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token,omitempty" doc:"Set only when eBay rotated the refresh token"`
		ExpiresIn    int    `json:"expires_in"              example:"7200"`
		TokenTime    int64  `json:"token_time"              example:"1750000000000" doc:"Issue time in Unix milliseconds"`
	}
}

// Refresh exchanges a refresh token for a new access token.
func (h *OAuthHandler) Refresh(ctx context.Context, in *RefreshInput) (*RefreshOutput, error) {
	if in.Body.RefreshToken == "" {
		return nil, newAPIError(http.StatusBadRequest, "refresh_token is required")
	}

	tok, err := h.auth.Refresh(ctx, in.Body.RefreshToken)
	if err != nil {
		return nil, h.refreshError(err)
	}

	out := &RefreshOutput{}
	out.Body.Success = true
	out.Body.AccessToken = tok.AccessToken
	out.Body.ExpiresIn = tok.ExpiresIn
	out.Body.TokenTime = tok.TokenTime()
	if tok.RefreshToken != in.Body.RefreshToken {
		out.Body.RefreshToken = tok.RefreshToken
	}
	return out, nil
}

func (h *OAuthHandler) refreshError(err error) *APIError {
	if errors.Is(err, ebay.ErrMissingCredentials) {
		return newAPIError(http.StatusInternalServerError, "eBay client id or secret is not configured")
	}

	var tokErr *ebay.TokenError
	if errors.As(err, &tokErr) {
		reauth := tokErr.NeedsReauth()
		h.log.Info("refresh rejected", "status", tokErr.StatusCode, "needs_reauth", reauth)
		e := newAPIError(tokErr.StatusCode, tokErr.Message())
		e.NeedsReauth = &reauth
		return e
	}

	h.log.Warn("refresh failed", "error", err)
	reauth := false
	e := newAPIError(http.StatusInternalServerError, "token refresh failed: "+err.Error())
	e.NeedsReauth = &reauth
	return e
}

// RegisterOAuthRoutes registers the huma-typed OAuth endpoints. Authorize
// and Callback are raw echo routes because they answer with redirects.
func RegisterOAuthRoutes(api huma.API, h *OAuthHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "refresh-ebay-token",
		Method:        http.MethodPost,
		Path:          "/api/ebay/refresh",
		Summary:       "Refresh an eBay user token",
		Description:   "Exchanges a refresh token for a new access token with the same scopes.",
		Tags:          []string{"ebay"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError},
	}, h.Refresh)
}
