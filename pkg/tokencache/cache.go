// Package tokencache provides a best-effort, lock-free value cache with an
// expiry instant. Concurrent writers may race; the last Set wins and the cost
// of a race is a redundant refresh, never a torn read.
package tokencache

import (
	"sync/atomic"
	"time"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache holds a single value until its expiry minus a safety margin.
type Cache[T any] struct {
	current atomic.Pointer[entry[T]]
	margin  time.Duration
}

// New creates a Cache that treats values as stale margin before they expire.
func New[T any](margin time.Duration) *Cache[T] {
	return &Cache[T]{margin: margin}
}

// Get returns the cached value if one is set and now is before
// expiry-margin.
func (c *Cache[T]) Get(now time.Time) (T, bool) {
	e := c.current.Load()
	if e == nil || !now.Before(e.expiry.Add(-c.margin)) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set replaces the cached value wholesale.
func (c *Cache[T]) Set(value T, expiry time.Time) {
	c.current.Store(&entry[T]{value: value, expiry: expiry})
}

// Expiry returns the expiry of the current value, or the zero time.
func (c *Cache[T]) Expiry() time.Time {
	e := c.current.Load()
	if e == nil {
		return time.Time{}
	}
	return e.expiry
}

// Clear drops the cached value.
func (c *Cache[T]) Clear() {
	c.current.Store(nil)
}
