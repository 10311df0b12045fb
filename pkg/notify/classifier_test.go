package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitenotify/pkg/notify"
	"github.com/dmitrymomot/sitenotify/pkg/ratelimit"
	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

func allEnabledSettings() settings.Settings {
	return settings.Settings{
		EnabledNotifications: map[settings.NotificationType]bool{
			settings.TypePending:   true,
			settings.TypePublished: true,
			settings.TypeDraft:     true,
			settings.TypeScheduled: true,
			settings.TypeUpdated:   true,
			settings.TypeTrashed:   true,
		},
		EnabledContentTypes: []string{"post"},
	}
}

func newMarkerStore(t *testing.T) *ratelimit.MemoryStore {
	t.Helper()
	store := ratelimit.NewMemoryStore(ratelimit.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	return store
}

func TestClassify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	post := notify.Content{ID: 7, Type: "post", Title: "Hello"}

	tests := []struct {
		name string
		old  notify.Status
		new  notify.Status
		want settings.NotificationType
		ok   bool
	}{
		{"draft to pending", notify.StatusDraft, notify.StatusPending, settings.TypePending, true},
		{"publish to pending", notify.StatusPublish, notify.StatusPending, settings.TypePending, true},
		{"pending to pending", notify.StatusPending, notify.StatusPending, "", false},
		{"draft to publish", notify.StatusDraft, notify.StatusPublish, settings.TypePublished, true},
		{"future to publish", notify.StatusFuture, notify.StatusPublish, settings.TypePublished, true},
		{"pending to draft", notify.StatusPending, notify.StatusDraft, settings.TypeDraft, true},
		{"publish to draft", notify.StatusPublish, notify.StatusDraft, settings.TypeDraft, true},
		{"auto-draft to draft", notify.StatusAutoDraft, notify.StatusDraft, "", false},
		{"draft to draft", notify.StatusDraft, notify.StatusDraft, "", false},
		{"draft to future", notify.StatusDraft, notify.StatusFuture, settings.TypeScheduled, true},
		{"future to future", notify.StatusFuture, notify.StatusFuture, "", false},
		{"publish to publish", notify.StatusPublish, notify.StatusPublish, settings.TypeUpdated, true},
		{"publish to trash", notify.StatusPublish, notify.StatusTrash, settings.TypeTrashed, true},
		{"draft to trash", notify.StatusDraft, notify.StatusTrash, settings.TypeTrashed, true},
		{"trash to draft", notify.StatusTrash, notify.StatusDraft, settings.TypeDraft, true},
		{"unknown transition", notify.Status("private"), notify.Status("inherit"), "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := notify.NewClassifier(newMarkerStore(t), nil)
			got, ok := c.Classify(ctx, tt.old, tt.new, post, allEnabledSettings())

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("disabled type matches no rule", func(t *testing.T) {
		t.Parallel()

		s := allEnabledSettings()
		s.EnabledNotifications[settings.TypePending] = false

		c := notify.NewClassifier(newMarkerStore(t), nil)
		_, ok := c.Classify(ctx, notify.StatusDraft, notify.StatusPending, post, s)
		assert.False(t, ok)
	})

	t.Run("autosave and revision are skipped", func(t *testing.T) {
		t.Parallel()

		c := notify.NewClassifier(newMarkerStore(t), nil)

		autosave := post
		autosave.Autosave = true
		_, ok := c.Classify(ctx, notify.StatusDraft, notify.StatusPending, autosave, allEnabledSettings())
		assert.False(t, ok)

		revision := post
		revision.Revision = true
		_, ok = c.Classify(ctx, notify.StatusDraft, notify.StatusPending, revision, allEnabledSettings())
		assert.False(t, ok)
	})

	t.Run("unwatched content type is skipped", func(t *testing.T) {
		t.Parallel()

		page := post
		page.Type = "page"

		c := notify.NewClassifier(newMarkerStore(t), nil)
		_, ok := c.Classify(ctx, notify.StatusDraft, notify.StatusPending, page, allEnabledSettings())
		assert.False(t, ok)
	})
}

func TestClassifyUpdatedRateLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	post := notify.Content{ID: 7, Type: "post"}

	t.Run("repeat update within window is suppressed", func(t *testing.T) {
		t.Parallel()

		c := notify.NewClassifier(newMarkerStore(t), nil)

		got, ok := c.Classify(ctx, notify.StatusPublish, notify.StatusPublish, post, allEnabledSettings())
		require.True(t, ok)
		require.Equal(t, settings.TypeUpdated, got)

		_, ok = c.Classify(ctx, notify.StatusPublish, notify.StatusPublish, post, allEnabledSettings())
		assert.False(t, ok)
	})

	t.Run("different content items have independent windows", func(t *testing.T) {
		t.Parallel()

		c := notify.NewClassifier(newMarkerStore(t), nil)
		other := notify.Content{ID: 8, Type: "post"}

		_, ok := c.Classify(ctx, notify.StatusPublish, notify.StatusPublish, post, allEnabledSettings())
		require.True(t, ok)

		_, ok = c.Classify(ctx, notify.StatusPublish, notify.StatusPublish, other, allEnabledSettings())
		assert.True(t, ok)
	})

	t.Run("marker store failure suppresses the notification", func(t *testing.T) {
		t.Parallel()

		c := notify.NewClassifier(failingMarkerStore{}, nil)
		_, ok := c.Classify(ctx, notify.StatusPublish, notify.StatusPublish, post, allEnabledSettings())
		assert.False(t, ok)
	})
}

func TestAllowFailedLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("first attempt alerts, repeat is silenced", func(t *testing.T) {
		t.Parallel()

		c := notify.NewClassifier(newMarkerStore(t), nil)

		assert.True(t, c.AllowFailedLogin(ctx, "admin"))
		assert.False(t, c.AllowFailedLogin(ctx, "admin"))
	})

	t.Run("usernames have independent windows", func(t *testing.T) {
		t.Parallel()

		c := notify.NewClassifier(newMarkerStore(t), nil)

		assert.True(t, c.AllowFailedLogin(ctx, "admin"))
		assert.True(t, c.AllowFailedLogin(ctx, "root"))
	})
}

// failingMarkerStore simulates an unreachable marker backend.
type failingMarkerStore struct{}

func (failingMarkerStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return false, errors.New("backend unavailable")
}

func (failingMarkerStore) Reset(ctx context.Context, key string) error {
	return errors.New("backend unavailable")
}
