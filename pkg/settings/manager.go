package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/sitenotify/pkg/logger"
)

// DefaultKey is the store key the settings document is persisted under.
const DefaultKey = "sitenotify:settings"

// Guard authorizes settings writes. Both checks must pass before a
// submitted document is even sanitized; a failed check discards the input.
type Guard interface {
	// VerifyToken validates the anti-forgery token attached to a save request.
	VerifyToken(ctx context.Context, token string) bool

	// CanManage reports whether the calling identity may change settings.
	CanManage(ctx context.Context) bool
}

// Manager owns the settings document lifecycle: defaults on activation,
// reads on every event, guarded whole-document writes, delete on uninstall.
type Manager struct {
	store    Store
	registry Registry
	guard    Guard
	key      string
	logger   *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithKey overrides the store key the document is persisted under.
func WithKey(key string) ManagerOption {
	return func(m *Manager) {
		if key != "" {
			m.key = key
		}
	}
}

// WithLogger sets the logger for the Manager.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.logger = log
		}
	}
}

// NewManager creates a settings manager on top of the given store.
// Registry validates references during sanitization; Guard authorizes writes.
func NewManager(store Store, registry Registry, guard Guard, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:    store,
		registry: registry,
		guard:    guard,
		key:      DefaultKey,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init writes the default document if none exists yet. Called on activation.
func (m *Manager) Init(ctx context.Context) error {
	if _, err := m.store.Get(ctx, m.key); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("settings: read existing document: %w", err)
	}
	return m.persist(ctx, Default())
}

// Load returns the stored document with defaults filled in. A missing or
// unreadable document degrades to the defaults; it never fails dispatch.
func (m *Manager) Load(ctx context.Context) Settings {
	raw, err := m.store.Get(ctx, m.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.LogAttrs(ctx, slog.LevelWarn, "failed to read settings document, using defaults",
				logger.Error(err),
			)
		}
		return Default()
	}

	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "corrupt settings document, using defaults",
			logger.Error(err),
		)
		return Default()
	}
	return s.Normalize()
}

// Save validates the caller and the submitted document, then persists the
// sanitized result as a whole. On a failed security check the submitted
// input is discarded and the previously stored document is returned
// together with ErrInvalidToken or ErrPermissionDenied.
func (m *Manager) Save(ctx context.Context, token string, input Settings) (Settings, error) {
	if !m.guard.VerifyToken(ctx, token) {
		return m.Load(ctx), ErrInvalidToken
	}
	if !m.guard.CanManage(ctx) {
		return m.Load(ctx), ErrPermissionDenied
	}

	sanitized := Sanitize(ctx, input, m.registry).Normalize()
	if err := m.persist(ctx, sanitized); err != nil {
		return m.Load(ctx), err
	}
	return sanitized, nil
}

// Delete removes the document. Called on uninstall.
func (m *Manager) Delete(ctx context.Context) error {
	return m.store.Delete(ctx, m.key)
}

func (m *Manager) persist(ctx context.Context, s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: encode document: %w", err)
	}
	if err := m.store.Set(ctx, m.key, raw); err != nil {
		return fmt.Errorf("settings: write document: %w", err)
	}
	return nil
}
