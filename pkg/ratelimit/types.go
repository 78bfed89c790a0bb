package ratelimit

import (
	"context"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests remaining in the current window,
	// never negative.
	Remaining int

	// ResetAt is the time when the current window ends.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter checks and consumes rate-limit quota for a client key.
type Limiter interface {
	// Allow records one request for the given key and reports whether it
	// fits within the current window.
	Allow(ctx context.Context, key string) (*Result, error)
}

// Store is the counter backend for the fixed-window limiter.
type Store interface {
	// Increment adds one request to the key's current window, creating or
	// resetting the window as needed. It returns the count after the
	// increment and the time the window resets.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}
