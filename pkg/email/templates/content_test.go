package templates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitenotify/pkg/email/templates"
	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

func testSite() templates.Site {
	return templates.Site{
		Name:     "Example Blog",
		URL:      "https://example.com",
		AdminURL: "https://example.com/wp-admin",
	}
}

func TestContentSubject(t *testing.T) {
	t.Parallel()

	site := testSite()
	item := templates.Item{Title: "Hello World"}

	tests := []struct {
		name string
		t    settings.NotificationType
		want string
	}{
		{"pending", settings.TypePending, "[Example Blog] New post pending review: Hello World"},
		{"published", settings.TypePublished, "[Example Blog] Post published: Hello World"},
		{"draft", settings.TypeDraft, "[Example Blog] Post saved as draft: Hello World"},
		{"scheduled", settings.TypeScheduled, "[Example Blog] Post scheduled: Hello World"},
		{"updated", settings.TypeUpdated, "[Example Blog] Post updated: Hello World"},
		{"trashed", settings.TypeTrashed, "[Example Blog] Post trashed: Hello World"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, templates.ContentSubject(site, tt.t, item))
		})
	}

	t.Run("empty title falls back to placeholder", func(t *testing.T) {
		t.Parallel()

		got := templates.ContentSubject(site, settings.TypePending, templates.Item{})
		assert.Equal(t, "[Example Blog] New post pending review: (no title)", got)
	})

	t.Run("line breaks collapsed to spaces", func(t *testing.T) {
		t.Parallel()

		got := templates.ContentSubject(site, settings.TypePublished, templates.Item{
			Title: "Evil\r\nBcc: attacker@example.com",
		})
		assert.Equal(t, "[Example Blog] Post published: Evil Bcc: attacker@example.com", got)
		assert.NotContains(t, got, "\r")
		assert.NotContains(t, got, "\n")
	})
}

func TestContentBody(t *testing.T) {
	t.Parallel()

	site := testSite()
	item := templates.Item{
		Title:     "Hello World",
		Type:      "post",
		TypeLabel: "Post",
		Author:    "Alice",
		Permalink: "https://example.com/hello-world",
		EditURL:   "https://example.com/wp-admin/post.php?post=7&action=edit",
	}

	t.Run("pending includes review link", func(t *testing.T) {
		t.Parallel()

		body, err := templates.ContentBody(site, settings.TypePending, item)
		require.NoError(t, err)

		assert.Contains(t, body, "submitted for review")
		assert.Contains(t, body, "Review and approve this post")
		assert.Contains(t, body, "Pending Review")
		assert.Contains(t, body, "<strong>Title:</strong> Hello World")
		assert.Contains(t, body, "<strong>Author:</strong> Alice")
	})

	t.Run("published includes view and edit links", func(t *testing.T) {
		t.Parallel()

		body, err := templates.ContentBody(site, settings.TypePublished, item)
		require.NoError(t, err)

		assert.Contains(t, body, `href="https://example.com/hello-world"`)
		assert.Contains(t, body, "View post")
		assert.Contains(t, body, "Edit post")
	})

	t.Run("scheduled includes publish time", func(t *testing.T) {
		t.Parallel()

		scheduled := item
		scheduled.ScheduledAt = time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC)

		body, err := templates.ContentBody(site, settings.TypeScheduled, scheduled)
		require.NoError(t, err)

		assert.Contains(t, body, "Scheduled for:")
		assert.Contains(t, body, "March 14, 2026 3:04 pm")
	})

	t.Run("trashed falls back to trash list url", func(t *testing.T) {
		t.Parallel()

		body, err := templates.ContentBody(site, settings.TypeTrashed, item)
		require.NoError(t, err)

		assert.Contains(t, body, "moved to trash")
		assert.Contains(t, body, "post_status=trash")
	})

	t.Run("title is html escaped", func(t *testing.T) {
		t.Parallel()

		evil := item
		evil.Title = `<script>alert("x")</script>`

		body, err := templates.ContentBody(site, settings.TypePublished, evil)
		require.NoError(t, err)

		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, "&lt;script&gt;")
	})

	t.Run("type label falls back to slug", func(t *testing.T) {
		t.Parallel()

		plain := item
		plain.TypeLabel = ""
		plain.Type = "recipe"

		body, err := templates.ContentBody(site, settings.TypeDraft, plain)
		require.NoError(t, err)
		assert.Contains(t, body, "<strong>Type:</strong> recipe")
	})

	t.Run("footer names the site", func(t *testing.T) {
		t.Parallel()

		body, err := templates.ContentBody(site, settings.TypeDraft, item)
		require.NoError(t, err)
		assert.Contains(t, body, "This is an automated notification from Example Blog.")
	})
}
