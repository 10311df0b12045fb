package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sitenotify/pkg/directory"
	"github.com/dmitrymomot/sitenotify/pkg/email"
	"github.com/dmitrymomot/sitenotify/pkg/email/templates"
	"github.com/dmitrymomot/sitenotify/pkg/ratelimit"
	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

var (
	// ErrNilDependency is returned by New when a required collaborator is missing.
	ErrNilDependency = errors.New("notify: nil dependency")
)

// Service is the event-facing surface of the notification pipeline. It is
// constructed once at startup with its collaborators injected explicitly;
// there is no package-level instance.
//
// Every Handle/event method runs synchronously within the request that
// raised the event and never returns an error to the event source: failures
// degrade to "no email sent" and are logged.
type Service struct {
	settings   *settings.Manager
	dir        directory.Directory
	classifier *Classifier
	resolver   *Resolver
	dispatcher *Dispatcher
	site       templates.Site
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Service.
type Option func(*serviceConfig)

type serviceConfig struct {
	logger  *slog.Logger
	filters *Filters
	labels  map[string]string
	now     func() time.Time
}

// WithLogger sets the logger for the Service and its components.
func WithLogger(log *slog.Logger) Option {
	return func(c *serviceConfig) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithFilters installs the extension-point filter chains.
func WithFilters(f *Filters) Option {
	return func(c *serviceConfig) {
		c.filters = f
	}
}

// WithContentTypeLabels maps content type slugs to the human-readable
// labels rendered in email bodies. Unmapped slugs render as-is.
func WithContentTypeLabels(labels map[string]string) Option {
	return func(c *serviceConfig) {
		c.labels = labels
	}
}

// WithClock overrides the time source used for event timestamps. Test hook.
func WithClock(now func() time.Time) Option {
	return func(c *serviceConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates the notification service. markers may be nil, in which case
// an in-process marker store is used; everything else is required.
func New(mgr *settings.Manager, dir directory.Directory, sender email.Sender, markers ratelimit.Store, site templates.Site, opts ...Option) (*Service, error) {
	if mgr == nil {
		return nil, errors.Join(ErrNilDependency, errors.New("settings manager is required"))
	}
	if dir == nil {
		return nil, errors.Join(ErrNilDependency, errors.New("user directory is required"))
	}
	if sender == nil {
		return nil, errors.Join(ErrNilDependency, errors.New("mail sender is required"))
	}
	if markers == nil {
		markers = ratelimit.NewMemoryStore()
	}

	c := &serviceConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return &Service{
		settings:   mgr,
		dir:        dir,
		classifier: NewClassifier(markers, c.logger),
		resolver:   NewResolver(dir, c.logger),
		dispatcher: NewDispatcher(sender, site, c.filters, c.labels, c.logger),
		site:       site,
		logger:     c.logger,
		now:        c.now,
	}, nil
}

// HandleStatusChange processes one content status transition end to end:
// classify, resolve recipients, render, send. It must be called at most
// once per actual state change.
func (svc *Service) HandleStatusChange(ctx context.Context, oldStatus, newStatus Status, item Content) {
	s := svc.settings.Load(ctx)

	t, ok := svc.classifier.Classify(ctx, oldStatus, newStatus, item, s)
	if !ok {
		return
	}
	if len(s.RecipientRoles) == 0 && len(s.RecipientUsers) == 0 {
		return
	}

	recipients := svc.resolver.Resolve(ctx, s.RecipientRoles, s.RecipientUsers)
	if len(recipients) == 0 {
		return
	}

	authorName := "Unknown"
	if u, err := svc.dir.User(ctx, item.AuthorID); err == nil {
		authorName = u.DisplayName
	}

	svc.dispatcher.Dispatch(ctx, t, item, authorName, recipients)
}
