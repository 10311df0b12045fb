package ratelimit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitenotify/pkg/ratelimit"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStoreAcquire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("first acquire wins, repeat is suppressed", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))
		defer store.Close()

		ok, err := store.Acquire(ctx, "content:7", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Acquire(ctx, "content:7", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("independent keys do not interfere", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))
		defer store.Close()

		ok, err := store.Acquire(ctx, "content:1", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Acquire(ctx, "content:2", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("marker expires after its window", func(t *testing.T) {
		t.Parallel()

		clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
		store := ratelimit.NewMemoryStore(
			ratelimit.WithCleanupInterval(0),
			ratelimit.WithClock(clock.Now),
		)
		defer store.Close()

		ok, err := store.Acquire(ctx, "login:abc", 5*time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		clock.Advance(4 * time.Minute)
		ok, err = store.Acquire(ctx, "login:abc", 5*time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		clock.Advance(2 * time.Minute)
		ok, err = store.Acquire(ctx, "login:abc", 5*time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reset releases the marker", func(t *testing.T) {
		t.Parallel()

		store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))
		defer store.Close()

		ok, err := store.Acquire(ctx, "content:9", time.Hour)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, store.Reset(ctx, "content:9"))

		ok, err = store.Acquire(ctx, "content:9", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestMemoryStoreClose(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	store.Close()
	store.Close() // idempotent
}
