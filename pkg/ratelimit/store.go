package ratelimit

import (
	"context"
	"time"
)

// Store holds short-lived dedup markers keyed by string. A marker opens a
// suppression window: while it exists, the same notification must not fire
// again.
type Store interface {
	// Acquire atomically sets the marker if absent and reports whether the
	// caller won it. false means a window is already open and the
	// notification must be suppressed. The check-and-set must be atomic so
	// two near-simultaneous duplicate events cannot both win.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Reset clears the marker for the given key.
	Reset(ctx context.Context, key string) error
}
