package templates

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

// EventSubject renders the subject line for a site-event notification.
func EventSubject(site Site, ev settings.SiteEvent) string {
	phrases := map[settings.SiteEvent]string{
		settings.EventUserRegistered:    "New User Registration",
		settings.EventUserDeleted:       "User Deleted",
		settings.EventUserRoleChanged:   "User Role Changed",
		settings.EventPluginActivated:   "Plugin Activated",
		settings.EventPluginDeactivated: "Plugin Deactivated",
		settings.EventPluginUpdated:     "Plugin(s) Updated",
		settings.EventThemeSwitched:     "Theme Switched",
		settings.EventThemeUpdated:      "Theme(s) Updated",
		settings.EventCoreUpdated:       "Core Updated",
		settings.EventFailedLogin:       "Failed Login Attempt",
		settings.EventPasswordReset:     "Password Reset Requested",
	}
	phrase, ok := phrases[ev]
	if !ok {
		phrase = "Site Notification"
	}
	return fmt.Sprintf("[%s] %s", site.Name, phrase)
}

// eventData is the payload every site-event template receives: a heading,
// an intro line, labeled key/value rows, at most one action link, and an
// optional warning line.
type eventData struct {
	Site    Site
	Subject string
	Intro   string
	Rows    []eventRow
	Items   []string // plain list entries for update digests
	Link    eventLink
	Warning string
}

type eventRow struct {
	Label string
	Value string
}

type eventLink struct {
	URL   string
	Label string
}

func renderEvent(site Site, ev settings.SiteEvent, data eventData) (string, error) {
	data.Site = site
	data.Subject = EventSubject(site, ev)

	var sb strings.Builder
	if err := eventTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("templates: render %s body: %w", ev, err)
	}
	return sb.String(), nil
}

// UserRegisteredBody renders the new-user notification.
func UserRegisteredBody(site Site, acc Account, at time.Time) (string, error) {
	return renderEvent(site, settings.EventUserRegistered, eventData{
		Intro: "A new user has registered:",
		Rows: []eventRow{
			{"Username:", acc.Login},
			{"Email:", acc.Email},
			{"Display Name:", acc.DisplayName},
			{"Date:", at.Format(eventTimeLayout)},
		},
		Link: eventLink{site.profileURL(acc.ID), "View User Profile"},
	})
}

// UserDeletedBody renders the user-deleted notification.
func UserDeletedBody(site Site, acc Account, at time.Time) (string, error) {
	return renderEvent(site, settings.EventUserDeleted, eventData{
		Intro: "A user has been deleted:",
		Rows: []eventRow{
			{"Username:", acc.Login},
			{"Email:", acc.Email},
			{"Display Name:", acc.DisplayName},
			{"Date:", at.Format(eventTimeLayout)},
		},
	})
}

// UserRoleChangedBody renders the role-change notification with the role
// names before and after.
func UserRoleChangedBody(site Site, acc Account, oldRoles []string, newRole string, at time.Time) (string, error) {
	return renderEvent(site, settings.EventUserRoleChanged, eventData{
		Intro: "A user's role has been changed:",
		Rows: []eventRow{
			{"Username:", acc.Login},
			{"Email:", acc.Email},
			{"Previous Role(s):", strings.Join(oldRoles, ", ")},
			{"New Role:", newRole},
			{"Date:", at.Format(eventTimeLayout)},
		},
		Link: eventLink{site.profileURL(acc.ID), "View User Profile"},
	})
}

// PluginActivatedBody renders the plugin-activated notification.
func PluginActivatedBody(site Site, p Plugin, networkWide bool, at time.Time) (string, error) {
	return renderEvent(site, settings.EventPluginActivated, eventData{
		Intro: "A plugin has been activated:",
		Rows:  pluginRows(p, networkWide, at),
		Link:  eventLink{site.pluginsURL(), "View Plugins"},
	})
}

// PluginDeactivatedBody renders the plugin-deactivated notification.
func PluginDeactivatedBody(site Site, p Plugin, networkWide bool, at time.Time) (string, error) {
	return renderEvent(site, settings.EventPluginDeactivated, eventData{
		Intro: "A plugin has been deactivated:",
		Rows:  pluginRows(p, networkWide, at),
		Link:  eventLink{site.pluginsURL(), "View Plugins"},
	})
}

func pluginRows(p Plugin, networkWide bool, at time.Time) []eventRow {
	rows := []eventRow{{"Plugin:", p.Name}}
	if p.Version != "" {
		rows = append(rows, eventRow{"Version:", p.Version})
	}
	wide := "No"
	if networkWide {
		wide = "Yes"
	}
	rows = append(rows,
		eventRow{"Network Wide:", wide},
		eventRow{"Date:", at.Format(eventTimeLayout)},
	)
	return rows
}

// PluginsUpdatedBody renders the plugin-update digest.
func PluginsUpdatedBody(site Site, plugins []Plugin, at time.Time) (string, error) {
	items := make([]string, 0, len(plugins))
	for _, p := range plugins {
		items = append(items, p.Label())
	}
	return renderEvent(site, settings.EventPluginUpdated, eventData{
		Intro: "The following plugin(s) have been updated:",
		Items: items,
		Rows:  []eventRow{{"Date:", at.Format(eventTimeLayout)}},
		Link:  eventLink{site.pluginsURL(), "View Plugins"},
	})
}

// ThemeSwitchedBody renders the active-theme-change notification.
func ThemeSwitchedBody(site Site, oldName, newName string, at time.Time) (string, error) {
	return renderEvent(site, settings.EventThemeSwitched, eventData{
		Intro: "The active theme has been changed:",
		Rows: []eventRow{
			{"Previous Theme:", oldName},
			{"New Theme:", newName},
			{"Date:", at.Format(eventTimeLayout)},
		},
		Link: eventLink{site.themesURL(), "View Themes"},
	})
}

// ThemesUpdatedBody renders the theme-update digest.
func ThemesUpdatedBody(site Site, themes []Theme, at time.Time) (string, error) {
	items := make([]string, 0, len(themes))
	for _, t := range themes {
		items = append(items, t.Label())
	}
	return renderEvent(site, settings.EventThemeUpdated, eventData{
		Intro: "The following theme(s) have been updated:",
		Items: items,
		Rows:  []eventRow{{"Date:", at.Format(eventTimeLayout)}},
		Link:  eventLink{site.themesURL(), "View Themes"},
	})
}

// CoreUpdatedBody renders the core-update notification.
func CoreUpdatedBody(site Site, version string, at time.Time) (string, error) {
	return renderEvent(site, settings.EventCoreUpdated, eventData{
		Intro: "The site core has been updated:",
		Rows: []eventRow{
			{"New Version:", version},
			{"Date:", at.Format(eventTimeLayout)},
		},
		Link: eventLink{site.updatesURL(), "View Updates"},
	})
}

// FailedLoginBody renders the failed-login alert with the attempted
// username and source address.
func FailedLoginBody(site Site, username, ip string, at time.Time) (string, error) {
	if ip == "" {
		ip = "Unknown"
	}
	return renderEvent(site, settings.EventFailedLogin, eventData{
		Intro: "A failed login attempt was detected:",
		Rows: []eventRow{
			{"Username:", username},
			{"IP Address:", ip},
			{"Date:", at.Format(eventTimeLayout)},
		},
		Warning: "If you did not attempt to log in, please review your site security.",
	})
}

// PasswordResetBody renders the password-reset alert. acc may be nil when
// the submitted login matched no account; the raw login is rendered then.
func PasswordResetBody(site Site, acc *Account, login, ip string, at time.Time) (string, error) {
	if ip == "" {
		ip = "Unknown"
	}
	rows := []eventRow{}
	if acc != nil {
		rows = append(rows, eventRow{"Username:", acc.Login}, eventRow{"Email:", acc.Email})
	} else {
		rows = append(rows, eventRow{"Username:", login})
	}
	rows = append(rows,
		eventRow{"IP Address:", ip},
		eventRow{"Date:", at.Format(eventTimeLayout)},
	)
	return renderEvent(site, settings.EventPasswordReset, eventData{
		Intro: "A password reset was requested:",
		Rows:  rows,
	})
}

var eventTmpl = template.Must(template.New("event").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #f7f7f7; padding: 20px; border-radius: 5px;">
        <h2 style="color: #0073aa; margin-top: 0;">{{.Subject}}</h2>
        <div style="background: #fff; padding: 20px; border-radius: 5px; margin: 15px 0;">
            <p><strong>{{.Intro}}</strong></p>
            {{- if .Items}}
            <ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>
            {{- end}}
            {{- if .Rows}}
            <ul>{{range .Rows}}<li><strong>{{.Label}}</strong> {{.Value}}</li>{{end}}</ul>
            {{- end}}
            {{- if .Link.URL}}
            <p><a href="{{.Link.URL}}">{{.Link.Label}}</a></p>
            {{- end}}
            {{- if .Warning}}
            <p style="color: #d63638;"><strong>{{.Warning}}</strong></p>
            {{- end}}
        </div>
        <p style="font-size: 12px; color: #666; margin-bottom: 0;">
            This is an automated notification from <a href="{{.Site.URL}}">{{.Site.Name}}</a>.
        </p>
    </div>
</body>
</html>`))
