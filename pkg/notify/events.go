package notify

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/sitenotify/pkg/directory"
	"github.com/dmitrymomot/sitenotify/pkg/email/templates"
	"github.com/dmitrymomot/sitenotify/pkg/logger"
	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

// eventTarget resolves the group address a site event is routed to. It
// returns false when the event toggle is off or the group address is empty.
func (svc *Service) eventTarget(ctx context.Context, ev settings.SiteEvent) (string, bool) {
	s := svc.settings.Load(ctx)
	if !s.AdminNotifications.Enabled[ev] {
		return "", false
	}
	to := s.AdminNotifications.EmailFor(ev)
	if to == "" {
		return "", false
	}
	return to, true
}

func (svc *Service) sendEvent(ctx context.Context, ev settings.SiteEvent, to, body string, err error) {
	if err != nil {
		svc.logger.LogAttrs(ctx, slog.LevelError, "failed to render site-event body",
			logger.SiteEvent(ev),
			logger.Error(err),
		)
		return
	}
	svc.dispatcher.DispatchEvent(ctx, ev, to, templates.EventSubject(svc.site, ev), body)
}

func account(u directory.User) templates.Account {
	return templates.Account{
		ID:          u.ID,
		Login:       u.Login,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}

// UserRegistered notifies the user-management address about a new account.
func (svc *Service) UserRegistered(ctx context.Context, userID int64) {
	to, ok := svc.eventTarget(ctx, settings.EventUserRegistered)
	if !ok {
		return
	}
	u, err := svc.dir.User(ctx, userID)
	if err != nil {
		svc.logger.LogAttrs(ctx, slog.LevelWarn, "registered user not found in directory",
			logger.SiteEvent(settings.EventUserRegistered),
			logger.UserID(userID),
			logger.Error(err),
		)
		return
	}
	body, err := templates.UserRegisteredBody(svc.site, account(*u), svc.now())
	svc.sendEvent(ctx, settings.EventUserRegistered, to, body, err)
}

// UserDeleted notifies the user-management address about a removed account.
// The caller passes the account snapshot captured before deletion since the
// directory no longer resolves it.
func (svc *Service) UserDeleted(ctx context.Context, acc templates.Account) {
	to, ok := svc.eventTarget(ctx, settings.EventUserDeleted)
	if !ok {
		return
	}
	body, err := templates.UserDeletedBody(svc.site, acc, svc.now())
	svc.sendEvent(ctx, settings.EventUserDeleted, to, body, err)
}

// UserRoleChanged notifies the user-management address about a role change.
// oldRoles carries the role slugs held before the change; both old and new
// roles are rendered with their display names where the directory knows them.
func (svc *Service) UserRoleChanged(ctx context.Context, userID int64, newRole string, oldRoles []string) {
	to, ok := svc.eventTarget(ctx, settings.EventUserRoleChanged)
	if !ok {
		return
	}
	u, err := svc.dir.User(ctx, userID)
	if err != nil {
		svc.logger.LogAttrs(ctx, slog.LevelWarn, "role-changed user not found in directory",
			logger.SiteEvent(settings.EventUserRoleChanged),
			logger.UserID(userID),
			logger.Error(err),
		)
		return
	}

	names, err := svc.dir.Roles(ctx)
	if err != nil {
		names = nil
	}
	old := make([]string, 0, len(oldRoles))
	for _, r := range oldRoles {
		old = append(old, roleLabel(names, r))
	}

	body, err := templates.UserRoleChangedBody(svc.site, account(*u), old, roleLabel(names, newRole), svc.now())
	svc.sendEvent(ctx, settings.EventUserRoleChanged, to, body, err)
}

func roleLabel(names map[string]string, slug string) string {
	if name, ok := names[slug]; ok && name != "" {
		return name
	}
	return slug
}

// PluginActivated notifies the plugin-management address.
func (svc *Service) PluginActivated(ctx context.Context, p templates.Plugin, networkWide bool) {
	to, ok := svc.eventTarget(ctx, settings.EventPluginActivated)
	if !ok {
		return
	}
	body, err := templates.PluginActivatedBody(svc.site, p, networkWide, svc.now())
	svc.sendEvent(ctx, settings.EventPluginActivated, to, body, err)
}

// PluginDeactivated notifies the plugin-management address.
func (svc *Service) PluginDeactivated(ctx context.Context, p templates.Plugin, networkWide bool) {
	to, ok := svc.eventTarget(ctx, settings.EventPluginDeactivated)
	if !ok {
		return
	}
	body, err := templates.PluginDeactivatedBody(svc.site, p, networkWide, svc.now())
	svc.sendEvent(ctx, settings.EventPluginDeactivated, to, body, err)
}

// PluginsUpdated sends one digest covering every plugin updated in a batch.
func (svc *Service) PluginsUpdated(ctx context.Context, plugins []templates.Plugin) {
	if len(plugins) == 0 {
		return
	}
	to, ok := svc.eventTarget(ctx, settings.EventPluginUpdated)
	if !ok {
		return
	}
	body, err := templates.PluginsUpdatedBody(svc.site, plugins, svc.now())
	svc.sendEvent(ctx, settings.EventPluginUpdated, to, body, err)
}

// ThemeSwitched notifies the theme-management address about an active
// theme change.
func (svc *Service) ThemeSwitched(ctx context.Context, newName, oldName string) {
	to, ok := svc.eventTarget(ctx, settings.EventThemeSwitched)
	if !ok {
		return
	}
	body, err := templates.ThemeSwitchedBody(svc.site, oldName, newName, svc.now())
	svc.sendEvent(ctx, settings.EventThemeSwitched, to, body, err)
}

// ThemesUpdated sends one digest covering every theme updated in a batch.
func (svc *Service) ThemesUpdated(ctx context.Context, themes []templates.Theme) {
	if len(themes) == 0 {
		return
	}
	to, ok := svc.eventTarget(ctx, settings.EventThemeUpdated)
	if !ok {
		return
	}
	body, err := templates.ThemesUpdatedBody(svc.site, themes, svc.now())
	svc.sendEvent(ctx, settings.EventThemeUpdated, to, body, err)
}

// CoreUpdated notifies the core-updates address about a platform upgrade.
func (svc *Service) CoreUpdated(ctx context.Context, version string) {
	to, ok := svc.eventTarget(ctx, settings.EventCoreUpdated)
	if !ok {
		return
	}
	body, err := templates.CoreUpdatedBody(svc.site, version, svc.now())
	svc.sendEvent(ctx, settings.EventCoreUpdated, to, body, err)
}

// FailedLogin notifies the security address about a failed login attempt.
// Attempts for the same username inside the suppression window produce a
// single alert. The window opens on every attempt, enabled or not, so
// toggling the event on mid-burst does not release a flood.
func (svc *Service) FailedLogin(ctx context.Context, username, ip string) {
	if !svc.classifier.AllowFailedLogin(ctx, username) {
		return
	}
	to, ok := svc.eventTarget(ctx, settings.EventFailedLogin)
	if !ok {
		return
	}
	body, err := templates.FailedLoginBody(svc.site, username, ip, svc.now())
	svc.sendEvent(ctx, settings.EventFailedLogin, to, body, err)
}

// PasswordReset notifies the security address about a password reset
// request. login is what the requester typed and may be a username or an
// email address; the matching account is attached when the directory
// resolves it.
func (svc *Service) PasswordReset(ctx context.Context, login, ip string) {
	to, ok := svc.eventTarget(ctx, settings.EventPasswordReset)
	if !ok {
		return
	}

	var acc *templates.Account
	if u, err := svc.dir.UserByLogin(ctx, login); err == nil {
		a := account(*u)
		acc = &a
	} else if u, err := svc.dir.UserByEmail(ctx, login); err == nil {
		a := account(*u)
		acc = &a
	}

	body, err := templates.PasswordResetBody(svc.site, acc, login, ip, svc.now())
	svc.sendEvent(ctx, settings.EventPasswordReset, to, body, err)
}
