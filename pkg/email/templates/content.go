package templates

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

// untitled is the placeholder rendered when a content item has no title.
const untitled = "(no title)"

// crlf collapses every carriage-return/newline sequence to a single space.
// Subject lines end up in mail headers, so this is mandatory header
// injection defense, not cosmetics.
var crlf = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// ContentSubject renders the subject line for a content notification:
// "[{site name}] {action phrase}: {title}".
func ContentSubject(site Site, t settings.NotificationType, item Item) string {
	title := item.Title
	if title == "" {
		title = untitled
	}
	title = crlf.Replace(title)

	switch t {
	case settings.TypePending:
		return fmt.Sprintf("[%s] New post pending review: %s", site.Name, title)
	case settings.TypePublished:
		return fmt.Sprintf("[%s] Post published: %s", site.Name, title)
	case settings.TypeDraft:
		return fmt.Sprintf("[%s] Post saved as draft: %s", site.Name, title)
	case settings.TypeScheduled:
		return fmt.Sprintf("[%s] Post scheduled: %s", site.Name, title)
	case settings.TypeUpdated:
		return fmt.Sprintf("[%s] Post updated: %s", site.Name, title)
	case settings.TypeTrashed:
		return fmt.Sprintf("[%s] Post trashed: %s", site.Name, title)
	default:
		return fmt.Sprintf("[%s] Post notification", site.Name)
	}
}

type contentData struct {
	Site         Site
	Item         Item
	TrashListURL string
	ScheduledFor string
}

// ContentBody renders the HTML body for a content notification. The body is
// one of six fixed templates wrapped in a minimal HTML shell with a footer
// disclaimer; user-controlled strings are escaped contextually by
// html/template.
func ContentBody(site Site, t settings.NotificationType, item Item) (string, error) {
	if item.Title == "" {
		item.Title = untitled
	}
	if item.TypeLabel == "" {
		item.TypeLabel = item.Type
	}

	data := contentData{Site: site, Item: item}
	if t == settings.TypeScheduled && !item.ScheduledAt.IsZero() {
		data.ScheduledFor = item.ScheduledAt.Format(scheduleTimeLayout)
	}
	if t == settings.TypeTrashed {
		data.TrashListURL = item.TrashListURL
		if data.TrashListURL == "" {
			data.TrashListURL = site.trashListURL(item.Type)
		}
	}

	var sb strings.Builder
	if err := contentTmpl.ExecuteTemplate(&sb, string(t), data); err != nil {
		return "", fmt.Errorf("templates: render %s body: %w", t, err)
	}
	return sb.String(), nil
}

var contentTmpl = template.Must(template.New("content").Parse(`
{{- define "meta" -}}
<p><strong>Title:</strong> {{.Item.Title}}</p><p><strong>Type:</strong> {{.Item.TypeLabel}}</p><p><strong>Author:</strong> {{.Item.Author}}</p>
{{- end -}}

{{- define "footer" -}}
<hr><p style="font-size: 12px; color: #666;">This is an automated notification from {{.Site.Name}}.</p>
{{- end -}}

{{- define "pending" -}}
<!DOCTYPE html><html><head><meta charset="UTF-8"></head><body><p>A new post has been submitted for review on <a href="{{.Site.URL}}">{{.Site.Name}}</a>.</p>{{template "meta" .}}<p><strong>Status:</strong> Pending Review</p><p><a href="{{.Item.EditURL}}">Review and approve this post</a></p>{{template "footer" .}}</body></html>
{{- end -}}

{{- define "published" -}}
<!DOCTYPE html><html><head><meta charset="UTF-8"></head><body><p>A post has been published on <a href="{{.Site.URL}}">{{.Site.Name}}</a>.</p>{{template "meta" .}}<p><a href="{{.Item.Permalink}}">View post</a> | <a href="{{.Item.EditURL}}">Edit post</a></p>{{template "footer" .}}</body></html>
{{- end -}}

{{- define "draft" -}}
<!DOCTYPE html><html><head><meta charset="UTF-8"></head><body><p>A post has been saved as draft on <a href="{{.Site.URL}}">{{.Site.Name}}</a>.</p>{{template "meta" .}}<p><a href="{{.Item.EditURL}}">Edit draft</a></p>{{template "footer" .}}</body></html>
{{- end -}}

{{- define "scheduled" -}}
<!DOCTYPE html><html><head><meta charset="UTF-8"></head><body><p>A post has been scheduled for publication on <a href="{{.Site.URL}}">{{.Site.Name}}</a>.</p>{{template "meta" .}}<p><strong>Scheduled for:</strong> {{.ScheduledFor}}</p><p><a href="{{.Item.EditURL}}">Edit post</a></p>{{template "footer" .}}</body></html>
{{- end -}}

{{- define "updated" -}}
<!DOCTYPE html><html><head><meta charset="UTF-8"></head><body><p>A published post has been updated on <a href="{{.Site.URL}}">{{.Site.Name}}</a>.</p>{{template "meta" .}}<p><a href="{{.Item.Permalink}}">View post</a> | <a href="{{.Item.EditURL}}">Edit post</a></p>{{template "footer" .}}</body></html>
{{- end -}}

{{- define "trashed" -}}
<!DOCTYPE html><html><head><meta charset="UTF-8"></head><body><p>A post has been moved to trash on <a href="{{.Site.URL}}">{{.Site.Name}}</a>.</p>{{template "meta" .}}<p><a href="{{.TrashListURL}}">View trashed posts</a></p>{{template "footer" .}}</body></html>
{{- end -}}
`))
