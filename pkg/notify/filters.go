package notify

import "github.com/dmitrymomot/sitenotify/pkg/settings"

// SubjectFilter may rewrite the subject line before send.
type SubjectFilter func(subject string, t settings.NotificationType, item Content) string

// BodyFilter may rewrite the HTML body before send.
type BodyFilter func(body string, t settings.NotificationType, item Content, authorName string) string

// RecipientFilter may rewrite the recipient list before send.
// Returning an empty list cancels the dispatch.
type RecipientFilter func(recipients []Recipient, t settings.NotificationType, item Content) []Recipient

// Filters holds the three typed extension points external collaborators can
// hook into. Transforms are registered explicitly at startup and applied in
// registration order.
type Filters struct {
	subject    []SubjectFilter
	body       []BodyFilter
	recipients []RecipientFilter
}

// NewFilters creates an empty filter set.
func NewFilters() *Filters {
	return &Filters{}
}

// OnSubject registers a subject transform.
func (f *Filters) OnSubject(fn SubjectFilter) *Filters {
	if fn != nil {
		f.subject = append(f.subject, fn)
	}
	return f
}

// OnBody registers a body transform.
func (f *Filters) OnBody(fn BodyFilter) *Filters {
	if fn != nil {
		f.body = append(f.body, fn)
	}
	return f
}

// OnRecipients registers a recipient-list transform.
func (f *Filters) OnRecipients(fn RecipientFilter) *Filters {
	if fn != nil {
		f.recipients = append(f.recipients, fn)
	}
	return f
}

func (f *Filters) applySubject(subject string, t settings.NotificationType, item Content) string {
	if f == nil {
		return subject
	}
	for _, fn := range f.subject {
		subject = fn(subject, t, item)
	}
	return subject
}

func (f *Filters) applyBody(body string, t settings.NotificationType, item Content, authorName string) string {
	if f == nil {
		return body
	}
	for _, fn := range f.body {
		body = fn(body, t, item, authorName)
	}
	return body
}

func (f *Filters) applyRecipients(recipients []Recipient, t settings.NotificationType, item Content) []Recipient {
	if f == nil {
		return recipients
	}
	for _, fn := range f.recipients {
		recipients = fn(recipients, t, item)
	}
	return recipients
}
