package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steeplehq/gateway/pkg/ratelimit"
)

func TestNewFixedWindow(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	t.Run("rejects non-positive max", func(t *testing.T) {
		t.Parallel()

		_, err := ratelimit.NewFixedWindow(store, ratelimit.Config{Max: 0, Window: time.Minute})
		assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)
	})

	t.Run("rejects non-positive window", func(t *testing.T) {
		t.Parallel()

		_, err := ratelimit.NewFixedWindow(store, ratelimit.Config{Max: 1, Window: 0})
		assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)
	})
}

func TestFixedWindowAllow(t *testing.T) {
	t.Parallel()

	t.Run("allows up to max then denies", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		t.Cleanup(func() { _ = store.Close() })

		limiter, err := ratelimit.NewFixedWindow(store, ratelimit.Config{Max: 3, Window: time.Minute})
		require.NoError(t, err)

		ctx := context.Background()
		wantAllowed := []bool{true, true, true, false}
		wantRemaining := []int{2, 1, 0, 0}

		for i := range wantAllowed {
			res, err := limiter.Allow(ctx, "client-a")
			require.NoError(t, err)
			assert.Equal(t, wantAllowed[i], res.Allowed, "request %d", i+1)
			assert.Equal(t, wantRemaining[i], res.Remaining, "request %d", i+1)
			assert.Equal(t, 3, res.Limit)
		}
	})

	t.Run("fresh window resets the count", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		t.Cleanup(func() { _ = store.Close() })

		limiter, err := ratelimit.NewFixedWindow(store, ratelimit.Config{Max: 3, Window: 50 * time.Millisecond})
		require.NoError(t, err)

		ctx := context.Background()
		for i := 0; i < 4; i++ {
			_, err := limiter.Allow(ctx, "client-b")
			require.NoError(t, err)
		}

		time.Sleep(60 * time.Millisecond)

		res, err := limiter.Allow(ctx, "client-b")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("keys are isolated", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		t.Cleanup(func() { _ = store.Close() })

		limiter, err := ratelimit.NewFixedWindow(store, ratelimit.Config{Max: 1, Window: time.Minute})
		require.NoError(t, err)

		ctx := context.Background()

		res, err := limiter.Allow(ctx, "client-c")
		require.NoError(t, err)
		assert.True(t, res.Allowed)

		res, err = limiter.Allow(ctx, "client-c")
		require.NoError(t, err)
		assert.False(t, res.Allowed)

		res, err = limiter.Allow(ctx, "client-d")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("retry after points at window end", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore()
		t.Cleanup(func() { _ = store.Close() })

		limiter, err := ratelimit.NewFixedWindow(store, ratelimit.Config{Max: 1, Window: time.Minute})
		require.NoError(t, err)

		ctx := context.Background()
		_, err = limiter.Allow(ctx, "client-e")
		require.NoError(t, err)

		res, err := limiter.Allow(ctx, "client-e")
		require.NoError(t, err)
		require.False(t, res.Allowed)
		assert.Greater(t, res.RetryAfter(), time.Duration(0))
		assert.LessOrEqual(t, res.RetryAfter(), time.Minute)
	})
}

func TestMemoryStoreConcurrent(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	const goroutines = 50

	done := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _, _ = store.Increment(ctx, "shared", time.Minute)
		}()
	}
	for i := 0; i < goroutines; i++ {
		<-done
	}

	count, _, err := store.Increment(ctx, "shared", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines+1), count)
}
