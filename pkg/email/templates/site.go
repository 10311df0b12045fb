package templates

import (
	"fmt"
	"strings"
	"time"
)

// Site identifies the installation that notifications are sent on behalf
// of. AdminURL is the dashboard base used to build action links.
type Site struct {
	Name     string
	URL      string
	AdminURL string
}

// Item carries the content fields the templates render. URLs come from the
// event source; TrashListURL may be left empty, in which case the trashed
// listing link is derived from the site's admin URL.
type Item struct {
	Title        string
	Type         string // content type slug
	TypeLabel    string // human-readable content type label
	Author       string
	Permalink    string
	EditURL      string
	ScheduledAt  time.Time
	TrashListURL string
}

// Account carries the user fields rendered in site-event notifications.
type Account struct {
	ID          int64
	Login       string
	Email       string
	DisplayName string
}

// Plugin identifies an extension by name and version.
type Plugin struct {
	Name    string
	Version string
}

// Theme identifies a theme by name and version.
type Theme struct {
	Name    string
	Version string
}

// Label returns "Name (vVersion)", or just the name when the version is unknown.
func (p Plugin) Label() string {
	if p.Version == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (v%s)", p.Name, p.Version)
}

// Label returns "Name (vVersion)", or just the name when the version is unknown.
func (t Theme) Label() string {
	if t.Version == "" {
		return t.Name
	}
	return fmt.Sprintf("%s (v%s)", t.Name, t.Version)
}

func (s Site) profileURL(userID int64) string {
	return fmt.Sprintf("%s/user-edit.php?user_id=%d", strings.TrimRight(s.AdminURL, "/"), userID)
}

func (s Site) pluginsURL() string {
	return strings.TrimRight(s.AdminURL, "/") + "/plugins.php"
}

func (s Site) themesURL() string {
	return strings.TrimRight(s.AdminURL, "/") + "/themes.php"
}

func (s Site) updatesURL() string {
	return strings.TrimRight(s.AdminURL, "/") + "/update-core.php"
}

func (s Site) trashListURL(contentType string) string {
	return fmt.Sprintf("%s/edit.php?post_status=trash&post_type=%s", strings.TrimRight(s.AdminURL, "/"), contentType)
}

// eventTimeLayout matches the timestamp format the dashboard shows.
const eventTimeLayout = "2006-01-02 15:04:05"

// scheduleTimeLayout renders the publication time of scheduled content.
const scheduleTimeLayout = "January 2, 2006 3:04 pm"
