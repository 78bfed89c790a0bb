package ratelimit

import "errors"

var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid rate limit configuration")

	// ErrStoreUnavailable indicates that the counter backend is unavailable.
	// Callers fail open on this error.
	ErrStoreUnavailable = errors.New("rate limit store unavailable")
)
