package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Config defines the fixed-window rate limit policy.
type Config struct {
	Max    int           `env:"RATE_LIMIT_MAX" envDefault:"100"`    // Max is the number of requests allowed per window.
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"` // Window is the length of each fixed window.
}

func (c Config) validate() error {
	if c.Max <= 0 {
		return fmt.Errorf("%w: max must be positive, got %d", ErrInvalidConfig, c.Max)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %v", ErrInvalidConfig, c.Window)
	}
	return nil
}

// FixedWindow is a fixed-window rate limiter: requests are counted within
// discrete, non-overlapping intervals and the counter resets when a new
// interval starts.
type FixedWindow struct {
	store  Store
	config Config
}

// NewFixedWindow creates a fixed-window limiter on top of the given store.
func NewFixedWindow(store Store, config Config) (*FixedWindow, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &FixedWindow{store: store, config: config}, nil
}

// Allow consumes one slot for key. The first request of a window always
// succeeds; subsequent requests succeed while the count stays within Max.
func (f *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	count, resetAt, err := f.store.Increment(ctx, key, f.config.Window)
	if err != nil {
		return nil, err
	}

	remaining := int64(f.config.Max) - count
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   count <= int64(f.config.Max),
		Limit:     f.config.Max,
		Remaining: int(remaining),
		ResetAt:   resetAt,
	}, nil
}
