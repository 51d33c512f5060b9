package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/bullion-desk/internal/metrics"
)

// ErrDailyLimitReached is returned when the daily API call limit has been exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// RateLimiter guards every outbound eBay call with a token bucket for
// per-second rate and a rolling 24-hour window for the daily quota. The
// window resets 24 hours after it opened.
type RateLimiter struct {
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// QuotaSnapshot is a point-in-time view of a RateLimiter.
type QuotaSnapshot struct {
	PerSecond  float64
	Burst      int
	DailyLimit int64
	DailyUsed  int64
	Remaining  int64
	ResetAt    time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size, and daily limit.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until the rate limiter allows the call, or the context is canceled.
// Returns ErrDailyLimitReached if the daily limit has been exhausted.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.checkDailyReset()

	if used := r.daily.Load(); used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, used, r.maxDaily)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	r.daily.Add(1)
	return nil
}

// DailyCount returns the current daily call count.
func (r *RateLimiter) DailyCount() int64 {
	return r.daily.Load()
}

// MaxDaily returns the configured daily call limit.
func (r *RateLimiter) MaxDaily() int64 {
	return r.maxDaily
}

// Remaining returns the number of API calls remaining in the current window.
func (r *RateLimiter) Remaining() int64 {
	return max(r.maxDaily-r.daily.Load(), 0)
}

// ResetAt returns the time when the daily counter resets.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}

// Snapshot returns the limiter's current configuration and usage.
func (r *RateLimiter) Snapshot() QuotaSnapshot {
	r.checkDailyReset()
	return QuotaSnapshot{
		PerSecond:  float64(r.limiter.Limit()),
		Burst:      r.limiter.Burst(),
		DailyLimit: r.maxDaily,
		DailyUsed:  r.DailyCount(),
		Remaining:  r.Remaining(),
		ResetAt:    r.ResetAt(),
	}
}

func (r *RateLimiter) checkDailyReset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily.Store(0)
		r.resetAt = now.Add(24 * time.Hour)
	}
}

// acquire waits on r, if set, and records usage metrics. A nil limiter
// always admits the call.
func (r *RateLimiter) acquire(ctx context.Context, endpoint string) error {
	if r == nil {
		return nil
	}
	if err := r.Wait(ctx); err != nil {
		if errors.Is(err, ErrDailyLimitReached) {
			metrics.EbayDailyLimitHits.Inc()
			metrics.EbayAPICallsTotal.WithLabelValues(endpoint, "quota").Inc()
		}
		return fmt.Errorf("rate limit: %w", err)
	}
	metrics.EbayDailyUsage.Set(float64(r.DailyCount()))
	return nil
}
