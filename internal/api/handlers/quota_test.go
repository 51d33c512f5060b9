package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/bullion-desk/internal/api/handlers"
	"github.com/donaldgifford/bullion-desk/internal/ebay"
)

type quotaBody struct {
	PerSecond  float64   `json:"per_second"`
	Burst      int       `json:"burst"`
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

func TestQuotaHandler_GetQuota(t *testing.T) {
	t.Parallel()

	opened := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	clock := ebay.WithRateLimiterNowFunc(func() time.Time { return opened })

	tests := []struct {
		name  string
		rl    func() *ebay.RateLimiter
		calls int
		want  quotaBody
	}{
		{
			name: "no limiter wired reports zero values",
			rl:   func() *ebay.RateLimiter { return nil },
			want: quotaBody{},
		},
		{
			name: "untouched sold-search budget",
			rl:   func() *ebay.RateLimiter { return ebay.NewRateLimiter(5, 10, 5000, clock) },
			want: quotaBody{
				PerSecond: 5, Burst: 10, DailyLimit: 5000, Remaining: 5000,
				ResetAt: opened.Add(24 * time.Hour),
			},
		},
		{
			name:  "listings fan-out spent part of the day",
			rl:    func() *ebay.RateLimiter { return ebay.NewRateLimiter(100, 20, 250, clock) },
			calls: 7,
			want: quotaBody{
				PerSecond: 100, Burst: 20, DailyLimit: 250, DailyUsed: 7, Remaining: 243,
				ResetAt: opened.Add(24 * time.Hour),
			},
		},
		{
			name:  "exhausted budget floors remaining at zero",
			rl:    func() *ebay.RateLimiter { return ebay.NewRateLimiter(100, 5, 3, clock) },
			calls: 5,
			want: quotaBody{
				PerSecond: 100, Burst: 5, DailyLimit: 3, DailyUsed: 3, Remaining: 0,
				ResetAt: opened.Add(24 * time.Hour),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := tt.rl()
			for range tt.calls {
				// Calls past the daily limit fail without counting.
				_ = rl.Wait(t.Context())
			}

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

			resp := api.Get("/api/v1/quota")
			require.Equal(t, http.StatusOK, resp.Code)

			var got quotaBody
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			assert.Equal(t, tt.want.PerSecond, got.PerSecond)
			assert.Equal(t, tt.want.Burst, got.Burst)
			assert.Equal(t, tt.want.DailyLimit, got.DailyLimit)
			assert.Equal(t, tt.want.DailyUsed, got.DailyUsed)
			assert.Equal(t, tt.want.Remaining, got.Remaining)
			assert.True(t, tt.want.ResetAt.Equal(got.ResetAt), "reset_at = %s", got.ResetAt)
		})
	}
}

func TestQuotaHandler_ListedInOpenAPI(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(nil))

	op := api.OpenAPI().Paths["/api/v1/quota"].Get
	require.NotNil(t, op)
	assert.Equal(t, "get-quota", op.OperationID)
	assert.Equal(t, []string{"ebay"}, op.Tags)
}
