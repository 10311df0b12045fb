package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store using in-memory markers with expiry.
type MemoryStore struct {
	mu      sync.Mutex
	markers map[string]time.Time // key -> expiry

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once

	now func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the sweep interval for removing expired markers.
// Set to 0 to disable the background sweep; expired markers are still
// treated as absent on Acquire.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithClock overrides the time source. Test hook.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore creates a new in-memory marker store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		markers:         make(map[string]time.Time),
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

// Acquire sets the marker if no unexpired one exists and reports ownership.
func (ms *MemoryStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	if expiry, ok := ms.markers[key]; ok && now.Before(expiry) {
		return false, nil
	}
	ms.markers[key] = now.Add(ttl)
	return true, nil
}

func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.markers, key)
	return nil
}

// cleanup runs periodically to remove expired markers.
func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, expiry := range ms.markers {
		if !now.Before(expiry) {
			delete(ms.markers, key)
		}
	}
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() {
		close(ms.stopCleanup)
	})
}
