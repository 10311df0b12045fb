package notify

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sitenotify/pkg/logger"
	"github.com/dmitrymomot/sitenotify/pkg/ratelimit"
	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

const (
	// UpdatedWindow suppresses repeat "updated" notifications per content item.
	UpdatedWindow = time.Hour

	// FailedLoginWindow suppresses repeat failed-login alerts per username.
	FailedLoginWindow = 5 * time.Minute
)

// Classifier decides whether a status transition produces a notification
// and which type. It owns the dedup markers for the two rate-limited paths.
type Classifier struct {
	markers ratelimit.Store
	logger  *slog.Logger
}

// NewClassifier creates a classifier backed by the given marker store.
func NewClassifier(markers ratelimit.Store, log *slog.Logger) *Classifier {
	if log == nil {
		log = slog.Default()
	}
	return &Classifier{markers: markers, logger: log}
}

// Classify evaluates the transition against the decision table in fixed
// priority order; the first matching rule wins. It returns false when no
// rule matches, when the item is an autosave or revision snapshot, when the
// item's content type is not watched, or when the "updated" rule is
// suppressed by an open rate-limit window.
//
// For a matching "updated" transition the suppression window opens here,
// before any email is sent, so duplicate events observed in quick
// succession settle on a single notification.
func (c *Classifier) Classify(ctx context.Context, oldStatus, newStatus Status, item Content, s settings.Settings) (settings.NotificationType, bool) {
	if item.Autosave || item.Revision {
		return "", false
	}
	if !s.ContentTypeEnabled(item.Type) {
		return "", false
	}

	enabled := s.EnabledNotifications

	switch {
	case oldStatus != StatusPending && newStatus == StatusPending && enabled[settings.TypePending]:
		return settings.TypePending, true

	case oldStatus != StatusPublish && newStatus == StatusPublish && enabled[settings.TypePublished]:
		return settings.TypePublished, true

	case newStatus == StatusDraft && oldStatus != StatusDraft && oldStatus != StatusAutoDraft && enabled[settings.TypeDraft]:
		return settings.TypeDraft, true

	case newStatus == StatusFuture && oldStatus != StatusFuture && enabled[settings.TypeScheduled]:
		return settings.TypeScheduled, true

	case oldStatus == StatusPublish && newStatus == StatusPublish && enabled[settings.TypeUpdated]:
		if !c.acquire(ctx, contentKey(item.ID), UpdatedWindow) {
			return "", false
		}
		return settings.TypeUpdated, true

	case newStatus == StatusTrash && enabled[settings.TypeTrashed]:
		return settings.TypeTrashed, true
	}

	return "", false
}

// AllowFailedLogin opens the per-username suppression window and reports
// whether this occurrence should alert. The window opens before the send
// to avoid duplicate firing on rapid repeated failures.
func (c *Classifier) AllowFailedLogin(ctx context.Context, username string) bool {
	return c.acquire(ctx, loginKey(username), FailedLoginWindow)
}

// acquire wraps the marker store's check-and-set. A store failure degrades
// to suppression, not to a send.
func (c *Classifier) acquire(ctx context.Context, key string, ttl time.Duration) bool {
	ok, err := c.markers.Acquire(ctx, key, ttl)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "marker store failure, suppressing notification",
			slog.String("marker_key", key),
			logger.Error(err),
		)
		return false
	}
	return ok
}

func contentKey(id int64) string {
	return fmt.Sprintf("content:%d", id)
}

func loginKey(username string) string {
	sum := md5.Sum([]byte(username))
	return "login:" + hex.EncodeToString(sum[:])
}
