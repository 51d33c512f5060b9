// Package main implements a mock eBay and spot-feed server for local
// development. It serves canned responses from a JSON fixture for the OAuth,
// Sell, Commerce Identity, and Finding APIs without real eBay credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type fixture struct {
	User           json.RawMessage              `json:"user"`
	InventoryItems []json.RawMessage            `json:"inventoryItems"`
	Offers         map[string][]json.RawMessage `json:"offers"`
	Campaigns      []json.RawMessage            `json:"campaigns"`
	Ads            map[string][]json.RawMessage `json:"ads"`
	Traffic        json.RawMessage              `json:"traffic"`
	Orders         []json.RawMessage            `json:"orders"`
	SoldItems      []json.RawMessage            `json:"soldItems"`
	Spot           json.RawMessage              `json:"spot"`
}

type findingTitle struct {
	Title []string `json:"title"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/seller.json", "path to the seller fixture")
	callback := flag.String("callback", "http://localhost:8080/api/ebay/callback", "where the mock consent page sends the browser")
	spotDown := flag.Bool("spot-down", false, "answer the spot feed with 503 to exercise the fallback")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture",
		"inventory_items", len(fx.InventoryItems),
		"orders", len(fx.Orders),
		"sold_items", len(fx.SoldItems),
	)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx, *callback, *spotDown)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixture, callback string, spotDown bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /oauth2/authorize", authorizeHandler(logger, callback))
	mux.HandleFunc("POST /identity/v1/oauth2/token", tokenHandler(logger))
	mux.HandleFunc("GET /commerce/identity/v1/user/", userAuth(rawHandler(fx.User)))
	mux.HandleFunc("GET /sell/inventory/v1/inventory_item", userAuth(inventoryHandler(fx)))
	mux.HandleFunc("GET /sell/inventory/v1/offer", userAuth(offersHandler(fx)))
	mux.HandleFunc("GET /sell/marketing/v1/ad_campaign", userAuth(campaignsHandler(fx)))
	mux.HandleFunc("GET /sell/marketing/v1/ad_campaign/{id}/ad", userAuth(adsHandler(fx)))
	mux.HandleFunc("GET /sell/analytics/v1/traffic_report", userAuth(rawHandler(fx.Traffic)))
	mux.HandleFunc("GET /sell/fulfillment/v1/order", userAuth(ordersHandler(fx)))
	mux.HandleFunc("GET /services/search/FindingService/v1", findingHandler(logger, fx))
	mux.HandleFunc("GET /spot", spotHandler(fx, spotDown))
	return mux
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// sellError mimics the Sell API error envelope.
func sellError(w http.ResponseWriter, status, id int, msg string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{"errorId": id, "domain": "API_MOCK", "message": msg}},
	})
}

// authorizeHandler plays the consent page: it approves immediately unless
// the client asks for a denial with deny=1.
func authorizeHandler(logger *slog.Logger, callback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := url.Values{"state": {r.URL.Query().Get("state")}}
		if r.URL.Query().Get("deny") == "1" {
			q.Set("error", "access_denied")
			q.Set("error_description", "The user denied the consent request")
		} else {
			q.Set("code", "mock-auth-code")
		}
		logger.Info("consent", "client_id", r.URL.Query().Get("client_id"), "denied", q.Has("error"))
		http.Redirect(w, r, callback+"?"+q.Encode(), http.StatusFound)
	}
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate Basic Auth header is present (don't verify creds).
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("token request missing Basic Auth header")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}

		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
			return
		}

		suffix := strconv.FormatInt(int64(os.Getpid()), 16)

		switch grant := r.PostForm.Get("grant_type"); grant {
		case "client_credentials":
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "mock-app-token-" + suffix,
				"expires_in":   7200,
				"token_type":   "Application Access Token",
			})
			logger.Info("issued mock application token")

		case "authorization_code":
			if code := r.PostForm.Get("code"); code == "" || code == "invalid" {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error":             "invalid_grant",
					"error_description": "the provided authorization grant code is invalid or was issued to another client",
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token":             "mock-user-token-" + suffix,
				"refresh_token":            "mock-refresh-token",
				"expires_in":               7200,
				"refresh_token_expires_in": 47304000,
				"token_type":               "User Access Token",
			})
			logger.Info("exchanged mock authorization code")

		case "refresh_token":
			if r.PostForm.Get("refresh_token") == "expired" {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error":             "invalid_grant",
					"error_description": "the provided authorization refresh token is invalid or was issued to another client",
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "mock-user-token-" + suffix,
				"expires_in":   7200,
				"token_type":   "User Access Token",
			})
			logger.Info("refreshed mock user token")

		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "unsupported_grant_type",
				"error_description": "grant type " + grant + " is not supported",
			})
		}
	}
}

// userAuth rejects requests without a bearer token, and the literal token
// "expired", the way the Sell APIs reject a stale user token.
func userAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" || token == "expired" {
			sellError(w, http.StatusUnauthorized, 1001, "Invalid access token")
			return
		}
		next(w, r)
	}
}

func rawHandler(body json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(body)
	}
}

func queryInt(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil && v >= 0 {
		return v
	}
	return def
}

func inventoryHandler(fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := max(queryInt(r, "limit", 25), 1)
		offset := queryInt(r, "offset", 0)
		total := len(fx.InventoryItems)

		page := []json.RawMessage{}
		if offset < total {
			page = fx.InventoryItems[offset:min(offset+limit, total)]
		}

		next := ""
		if offset+limit < total {
			next = fmt.Sprintf("/sell/inventory/v1/inventory_item?limit=%d&offset=%d", limit, offset+limit)
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"inventoryItems": page,
			"total":          total,
			"size":           len(page),
			"limit":          limit,
			"offset":         offset,
			"next":           next,
		})
	}
}

func offersHandler(fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sku := r.URL.Query().Get("sku")
		offers, ok := fx.Offers[sku]
		if !ok {
			sellError(w, http.StatusNotFound, 25713, "This Offer is not available.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"offers": offers, "total": len(offers)})
	}
}

func campaignsHandler(fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"campaigns": fx.Campaigns, "total": len(fx.Campaigns)})
	}
}

func adsHandler(fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ads, ok := fx.Ads[r.PathValue("id")]
		if !ok {
			sellError(w, http.StatusNotFound, 35045, "No campaign found.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ads": ads, "total": len(ads)})
	}
}

func ordersHandler(fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := max(queryInt(r, "limit", 50), 1)
		orders := fx.Orders[:min(limit, len(fx.Orders))]
		writeJSON(w, http.StatusOK, map[string]any{"orders": orders, "total": len(fx.Orders)})
	}
}

// findingHandler answers findCompletedItems by substring-matching the
// keywords against item titles. Filters other than the page size are
// accepted and ignored.
func findingHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	type indexedItem struct {
		raw   json.RawMessage
		title string
	}
	items := make([]indexedItem, 0, len(fx.SoldItems))
	for _, raw := range fx.SoldItems {
		var t findingTitle
		//nolint:errcheck,gosec // fixture data is trusted; title extraction is best-effort
		json.Unmarshal(raw, &t)
		title := ""
		if len(t.Title) > 0 {
			title = strings.ToLower(t.Title[0])
		}
		items = append(items, indexedItem{raw: raw, title: title})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("OPERATION-NAME") != "findCompletedItems" {
			writeJSON(w, http.StatusOK, findingEnvelope("Failure", nil, 0, "Unsupported operation"))
			return
		}
		if r.Header.Get("X-EBAY-SOA-SECURITY-IAFTOKEN") == "" {
			writeJSON(w, http.StatusOK, findingEnvelope("Failure", nil, 0, "Authentication failed"))
			return
		}

		words := strings.Fields(strings.ToLower(q.Get("keywords")))
		perPage := max(queryInt(r, "paginationInput.entriesPerPage", 100), 1)

		matched := []json.RawMessage{}
		for _, item := range items {
			if containsAll(item.title, words) {
				matched = append(matched, item.raw)
			}
		}
		total := len(matched)
		matched = matched[:min(perPage, total)]

		writeJSON(w, http.StatusOK, findingEnvelope("Success", matched, total, ""))
		logger.Info("finding", "keywords", q.Get("keywords"), "matched", total, "returned", len(matched))
	}
}

func containsAll(title string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(title, w) {
			return false
		}
	}
	return true
}

// findingEnvelope builds the Finding API JSON shape, in which every value
// is wrapped in a single-element array.
func findingEnvelope(ack string, items []json.RawMessage, total int, errMsg string) map[string]any {
	resp := map[string]any{
		"ack":       []string{ack},
		"timestamp": []string{time.Now().UTC().Format(time.RFC3339)},
	}
	if errMsg != "" {
		resp["errorMessage"] = []any{map[string]any{
			"error": []any{map[string]any{"message": []string{errMsg}}},
		}}
	}
	if items != nil {
		resp["searchResult"] = []any{map[string]any{
			"@count": strconv.Itoa(len(items)),
			"item":   items,
		}}
		resp["paginationOutput"] = []any{map[string]any{
			"totalEntries": []string{strconv.Itoa(total)},
		}}
	}
	return map[string]any{"findCompletedItemsResponse": []any{resp}}
}

func spotHandler(fx *fixture, down bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if down {
			http.Error(w, "feed maintenance", http.StatusServiceUnavailable)
			return
		}
		rawHandler(fx.Spot)(w, r)
	}
}
