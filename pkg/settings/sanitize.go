package settings

import (
	"context"
	"regexp"
	"strings"
)

// Registry reports which roles, users, and content types currently exist on
// the host system. Sanitization drops any configured reference the registry
// does not know about; implementations should answer from live state.
type Registry interface {
	RoleExists(ctx context.Context, role string) bool
	UserExists(ctx context.Context, id int64) bool
	ContentTypeExists(ctx context.Context, contentType string) bool
}

// StaticRegistry is a fixed-set Registry for tests and embedders whose
// role/user/content-type sets do not change at runtime.
type StaticRegistry struct {
	Roles        []string
	Users        []int64
	ContentTypes []string
}

func (r StaticRegistry) RoleExists(ctx context.Context, role string) bool {
	for _, v := range r.Roles {
		if v == role {
			return true
		}
	}
	return false
}

func (r StaticRegistry) UserExists(ctx context.Context, id int64) bool {
	for _, v := range r.Users {
		if v == id {
			return true
		}
	}
	return false
}

func (r StaticRegistry) ContentTypeExists(ctx context.Context, contentType string) bool {
	for _, v := range r.ContentTypes {
		if v == contentType {
			return true
		}
	}
	return false
}

// Sanitize validates a submitted document field by field and returns the
// cleaned copy. Stale role and user references and unknown enum keys are
// silently dropped, never reported: a bad reference degrades to "nobody
// notified", not to an error. SMTP account passwords pass through verbatim.
func Sanitize(ctx context.Context, input Settings, reg Registry) Settings {
	out := Settings{}

	// Keep only known notification keys that were explicitly submitted.
	out.EnabledNotifications = map[NotificationType]bool{}
	for _, t := range NotificationTypes {
		if enabled, ok := input.EnabledNotifications[t]; ok {
			out.EnabledNotifications[t] = enabled
		}
	}

	out.RecipientRoles = []string{}
	for _, role := range input.RecipientRoles {
		role = sanitizeText(role)
		if role != "" && reg.RoleExists(ctx, role) {
			out.RecipientRoles = append(out.RecipientRoles, role)
		}
	}

	out.RecipientUsers = []int64{}
	for _, id := range input.RecipientUsers {
		if id > 0 && reg.UserExists(ctx, id) {
			out.RecipientUsers = append(out.RecipientUsers, id)
		}
	}

	out.EnabledContentTypes = []string{}
	for _, contentType := range input.EnabledContentTypes {
		contentType = sanitizeText(contentType)
		if contentType != "" && reg.ContentTypeExists(ctx, contentType) {
			out.EnabledContentTypes = append(out.EnabledContentTypes, contentType)
		}
	}
	if len(out.EnabledContentTypes) == 0 {
		out.EnabledContentTypes = []string{"post"}
	}

	out.AdminNotifications.Enabled = map[SiteEvent]bool{}
	for _, ev := range SiteEvents {
		if enabled, ok := input.AdminNotifications.Enabled[ev]; ok {
			out.AdminNotifications.Enabled[ev] = enabled
		}
	}
	out.AdminNotifications.UserManagementEmail = sanitizeEmail(input.AdminNotifications.UserManagementEmail)
	out.AdminNotifications.PluginManagementEmail = sanitizeEmail(input.AdminNotifications.PluginManagementEmail)
	out.AdminNotifications.ThemeManagementEmail = sanitizeEmail(input.AdminNotifications.ThemeManagementEmail)
	out.AdminNotifications.CoreUpdatesEmail = sanitizeEmail(input.AdminNotifications.CoreUpdatesEmail)
	out.AdminNotifications.SecurityEmail = sanitizeEmail(input.AdminNotifications.SecurityEmail)

	out.SMTP.Enabled = input.SMTP.Enabled
	out.SMTP.Host = sanitizeText(input.SMTP.Host)
	out.SMTP.Port = input.SMTP.Port
	if out.SMTP.Port <= 0 || out.SMTP.Port > 65535 {
		out.SMTP.Port = 587
	}
	switch input.SMTP.Encryption {
	case EncryptionNone, EncryptionSSL, EncryptionTLS:
		out.SMTP.Encryption = input.SMTP.Encryption
	default:
		out.SMTP.Encryption = EncryptionTLS
	}
	out.SMTP.Auth = input.SMTP.Auth
	out.SMTP.DefaultAccount = sanitizeEmail(input.SMTP.DefaultAccount)

	out.SMTP.Accounts = []SMTPAccount{}
	for _, acc := range input.SMTP.Accounts {
		email := sanitizeEmail(acc.Email)
		if email == "" {
			// Accounts are only kept when they carry a valid address.
			continue
		}
		out.SMTP.Accounts = append(out.SMTP.Accounts, SMTPAccount{
			Email:    email,
			Name:     sanitizeText(acc.Name),
			Username: sanitizeText(acc.Username),
			Password: acc.Password,
		})
	}

	return out
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// sanitizeEmail trims an address and returns it lowercased, or "" when it
// is not a plausible email address.
func sanitizeEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return ""
	}
	return s
}

// sanitizeText trims whitespace and strips line breaks and control
// characters from a single-line text field.
func sanitizeText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' || r == '\t' {
			return ' '
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
