package notify

import "time"

// Status is a content item's lifecycle state as reported by the event
// source. Unknown states pass through the classifier and simply match no
// rule.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPublish   Status = "publish"
	StatusDraft     Status = "draft"
	StatusAutoDraft Status = "auto-draft"
	StatusFuture    Status = "future"
	StatusTrash     Status = "trash"
)

// Content is the transient payload of a status-transition event. It is
// consumed once per occurrence and never persisted.
type Content struct {
	ID          int64
	Type        string // content type slug
	Title       string
	AuthorID    int64
	Permalink   string
	EditURL     string
	ScheduledAt time.Time

	// Autosave and Revision mark snapshot writes that must never notify.
	Autosave bool
	Revision bool
}

// Recipient is one mailable account within a dispatch, unique by ID.
type Recipient struct {
	ID          int64
	Email       string
	DisplayName string
}
