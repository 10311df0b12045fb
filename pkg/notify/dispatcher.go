package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sitenotify/pkg/email"
	"github.com/dmitrymomot/sitenotify/pkg/email/templates"
	"github.com/dmitrymomot/sitenotify/pkg/logger"
	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

// Dispatcher renders a notification, runs the filter chains, and sends one
// email per recipient through the mail transport. Dispatch is fire and
// forget: per-recipient failures are logged and the batch continues; no
// batch summary is returned to the triggering event.
type Dispatcher struct {
	sender  email.Sender
	site    templates.Site
	filters *Filters
	labels  map[string]string // content type slug -> human label
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher. filters may be nil.
func NewDispatcher(sender email.Sender, site templates.Site, filters *Filters, labels map[string]string, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		sender:  sender,
		site:    site,
		filters: filters,
		labels:  labels,
		logger:  log,
	}
}

// Dispatch sends a content notification to every recipient.
func (d *Dispatcher) Dispatch(ctx context.Context, t settings.NotificationType, item Content, authorName string, recipients []Recipient) {
	tmplItem := templates.Item{
		Title:       item.Title,
		Type:        item.Type,
		TypeLabel:   d.labels[item.Type],
		Author:      authorName,
		Permalink:   item.Permalink,
		EditURL:     item.EditURL,
		ScheduledAt: item.ScheduledAt,
	}

	subject := templates.ContentSubject(d.site, t, tmplItem)
	body, err := templates.ContentBody(d.site, t, tmplItem)
	if err != nil {
		d.logger.LogAttrs(ctx, slog.LevelError, "failed to render notification body",
			logger.NotificationType(t),
			logger.ContentID(item.ID),
			logger.Error(err),
		)
		return
	}

	subject = d.filters.applySubject(subject, t, item)
	body = d.filters.applyBody(body, t, item, authorName)
	recipients = d.filters.applyRecipients(recipients, t, item)
	if len(recipients) == 0 {
		return
	}

	dispatchID := uuid.New().String()
	sent := 0
	for _, rcpt := range recipients {
		msg := email.Message{
			To:       rcpt.Email,
			Subject:  subject,
			BodyHTML: body,
			Tag:      "content-" + string(t),
		}
		if err := d.sender.Send(ctx, msg); err != nil {
			d.logger.LogAttrs(ctx, slog.LevelWarn, "failed to send notification email",
				logger.DispatchID(dispatchID),
				logger.NotificationType(t),
				logger.ContentID(item.ID),
				logger.Recipient(rcpt.Email),
				logger.Error(err),
			)
			continue
		}
		sent++
	}

	d.logger.LogAttrs(ctx, slog.LevelDebug, "notification dispatched",
		logger.DispatchID(dispatchID),
		logger.NotificationType(t),
		logger.ContentID(item.ID),
		slog.Int("recipients", len(recipients)),
		slog.Int("sent", sent),
	)
}

// DispatchEvent sends a site-event notification to its group address.
func (d *Dispatcher) DispatchEvent(ctx context.Context, ev settings.SiteEvent, to, subject, body string) {
	msg := email.Message{
		To:       to,
		Subject:  subject,
		BodyHTML: body,
		Tag:      "event-" + string(ev),
	}
	if err := d.sender.Send(ctx, msg); err != nil {
		d.logger.LogAttrs(ctx, slog.LevelWarn, "failed to send site-event email",
			logger.DispatchID(uuid.New().String()),
			logger.SiteEvent(ev),
			logger.Recipient(to),
			logger.Error(err),
		)
	}
}

// Site returns the site identity the dispatcher renders links against.
func (d *Dispatcher) Site() templates.Site {
	return d.site
}
