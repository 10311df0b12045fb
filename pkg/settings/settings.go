package settings

// NotificationType identifies a content-lifecycle notification.
type NotificationType string

const (
	TypePending   NotificationType = "pending"
	TypePublished NotificationType = "published"
	TypeDraft     NotificationType = "draft"
	TypeScheduled NotificationType = "scheduled"
	TypeUpdated   NotificationType = "updated"
	TypeTrashed   NotificationType = "trashed"
)

// NotificationTypes lists all valid content notification keys.
// Unknown keys are dropped during sanitization.
var NotificationTypes = []NotificationType{
	TypePending, TypePublished, TypeDraft, TypeScheduled, TypeUpdated, TypeTrashed,
}

// SiteEvent identifies a site-administration notification.
type SiteEvent string

const (
	EventUserRegistered    SiteEvent = "user_registered"
	EventUserDeleted       SiteEvent = "user_deleted"
	EventUserRoleChanged   SiteEvent = "user_role_changed"
	EventPluginActivated   SiteEvent = "plugin_activated"
	EventPluginDeactivated SiteEvent = "plugin_deactivated"
	EventPluginUpdated     SiteEvent = "plugin_updated"
	EventThemeSwitched     SiteEvent = "theme_switched"
	EventThemeUpdated      SiteEvent = "theme_updated"
	EventCoreUpdated       SiteEvent = "core_updated"
	EventFailedLogin       SiteEvent = "failed_login"
	EventPasswordReset     SiteEvent = "password_reset"
)

// SiteEvents lists all valid site-event keys.
var SiteEvents = []SiteEvent{
	EventUserRegistered, EventUserDeleted, EventUserRoleChanged,
	EventPluginActivated, EventPluginDeactivated, EventPluginUpdated,
	EventThemeSwitched, EventThemeUpdated,
	EventCoreUpdated,
	EventFailedLogin, EventPasswordReset,
}

// Encryption selects the SMTP transport encryption mode.
type Encryption string

const (
	EncryptionNone Encryption = ""
	EncryptionSSL  Encryption = "ssl"
	EncryptionTLS  Encryption = "tls"
)

// Settings is the single configuration document for the notification
// pipeline. Every field has a usable zero-value fallback so a partially
// populated document never breaks dispatch; Normalize fills defaults.
type Settings struct {
	EnabledNotifications map[NotificationType]bool `json:"enabled_notifications"`
	RecipientRoles       []string                  `json:"recipient_roles"`
	RecipientUsers       []int64                   `json:"recipient_users"`
	EnabledContentTypes  []string                  `json:"enabled_content_types"`
	AdminNotifications   AdminNotifications        `json:"admin_notifications"`
	SMTP                 SMTPSettings              `json:"smtp"`
}

// AdminNotifications holds the per-event toggles and the five group
// addresses that site-event notifications are routed to.
type AdminNotifications struct {
	Enabled map[SiteEvent]bool `json:"enabled"`

	UserManagementEmail   string `json:"user_management_email"`
	PluginManagementEmail string `json:"plugin_management_email"`
	ThemeManagementEmail  string `json:"theme_management_email"`
	CoreUpdatesEmail      string `json:"core_updates_email"`
	SecurityEmail         string `json:"security_email"`
}

// EmailFor returns the group address that notifications for the given
// site event are routed to. Unknown events map to an empty address.
func (a AdminNotifications) EmailFor(ev SiteEvent) string {
	switch ev {
	case EventUserRegistered, EventUserDeleted, EventUserRoleChanged:
		return a.UserManagementEmail
	case EventPluginActivated, EventPluginDeactivated, EventPluginUpdated:
		return a.PluginManagementEmail
	case EventThemeSwitched, EventThemeUpdated:
		return a.ThemeManagementEmail
	case EventCoreUpdated:
		return a.CoreUpdatesEmail
	case EventFailedLogin, EventPasswordReset:
		return a.SecurityEmail
	}
	return ""
}

// SMTPSettings configures the optional custom SMTP transport.
type SMTPSettings struct {
	Enabled        bool          `json:"enabled"`
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	Encryption     Encryption    `json:"encryption"`
	Auth           bool          `json:"auth"`
	DefaultAccount string        `json:"default_account"`
	Accounts       []SMTPAccount `json:"accounts"`
}

// SMTPAccount is one sender identity with its credentials.
// Password is stored verbatim: re-encoding would corrupt special
// characters, so it is exempt from the sanitization policy.
type SMTPAccount struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Account returns the account matching DefaultAccount, falling back to the
// first configured account. The second return value is false when no
// account is configured.
func (s SMTPSettings) Account() (SMTPAccount, bool) {
	for _, acc := range s.Accounts {
		if acc.Email != "" && acc.Email == s.DefaultAccount {
			return acc, true
		}
	}
	if len(s.Accounts) > 0 {
		return s.Accounts[0], true
	}
	return SMTPAccount{}, false
}

// Default returns the document written on first activation: pending,
// published and scheduled notifications on, administrators as the only
// recipient role, standard posts as the only watched content type, and a
// disabled SMTP block preconfigured for STARTTLS on port 587.
func Default() Settings {
	return Settings{
		EnabledNotifications: map[NotificationType]bool{
			TypePending:   true,
			TypePublished: true,
			TypeDraft:     false,
			TypeScheduled: true,
			TypeUpdated:   false,
			TypeTrashed:   false,
		},
		RecipientRoles:      []string{"administrator"},
		RecipientUsers:      []int64{},
		EnabledContentTypes: []string{"post"},
		AdminNotifications: AdminNotifications{
			Enabled: map[SiteEvent]bool{},
		},
		SMTP: SMTPSettings{
			Port:       587,
			Encryption: EncryptionTLS,
		},
	}
}

// Normalize fills zero-valued fields with safe defaults so a partially
// populated document is always usable. It never removes configured values.
func (s Settings) Normalize() Settings {
	if s.EnabledNotifications == nil {
		s.EnabledNotifications = map[NotificationType]bool{}
	}
	if s.RecipientRoles == nil {
		s.RecipientRoles = []string{}
	}
	if s.RecipientUsers == nil {
		s.RecipientUsers = []int64{}
	}
	if len(s.EnabledContentTypes) == 0 {
		s.EnabledContentTypes = []string{"post"}
	}
	if s.AdminNotifications.Enabled == nil {
		s.AdminNotifications.Enabled = map[SiteEvent]bool{}
	}
	if s.SMTP.Port == 0 {
		s.SMTP.Port = 587
	}
	if s.SMTP.Encryption != EncryptionNone && s.SMTP.Encryption != EncryptionSSL && s.SMTP.Encryption != EncryptionTLS {
		s.SMTP.Encryption = EncryptionTLS
	}
	return s
}

// ContentTypeEnabled reports whether the pipeline reacts to the given
// content type.
func (s Settings) ContentTypeEnabled(contentType string) bool {
	for _, t := range s.EnabledContentTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
