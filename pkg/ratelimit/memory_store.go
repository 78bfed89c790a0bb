package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process counter backend.
//
// Counts are local to a single process: in a multi-instance deployment each
// instance enforces its own approximation of the limit, and all state is lost
// on restart. This is a deliberate trade-off — rate limiting here is a
// best-effort policy guard, not a correctness-critical one. Use RedisStore
// when a shared counter is required.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	cleanupOnce     sync.Once
}

type bucket struct {
	count   int64
	resetAt time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often expired buckets are swept.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

// NewMemoryStore creates an in-memory store with automatic cleanup of
// expired buckets.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		buckets:         make(map[string]*bucket),
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()

	return s
}

// Increment adds one request to the key's window, lazily creating the bucket
// on first use and resetting it once the window has elapsed.
func (s *MemoryStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	b, exists := s.buckets[key]
	if !exists || now.After(b.resetAt) {
		b = &bucket{count: 1, resetAt: now.Add(window)}
		s.buckets[key] = b
		return b.count, b.resetAt, nil
	}

	b.count++
	return b.count, b.resetAt, nil
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, b := range s.buckets {
		if now.After(b.resetAt) {
			delete(s.buckets, key)
		}
	}
}

// Close stops the cleanup goroutine. Safe for repeated calls.
func (s *MemoryStore) Close() error {
	s.cleanupOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}
