package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

// Recipient records a recipient email address under the key "recipient".
func Recipient(email string) slog.Attr {
	return slog.String("recipient", email)
}

// NotificationType records the notification type under the key "notification_type".
func NotificationType(t any) slog.Attr {
	return slog.Any("notification_type", t)
}

// SiteEvent records the site-event key under the key "site_event".
func SiteEvent(ev any) slog.Attr {
	return slog.Any("site_event", ev)
}

// DispatchID records the dispatch correlation identifier under the key "dispatch_id".
func DispatchID(id string) slog.Attr {
	return slog.String("dispatch_id", id)
}

// ContentID records the content item identifier under the key "content_id".
func ContentID(id int64) slog.Attr {
	return slog.Int64("content_id", id)
}
