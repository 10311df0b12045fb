// Package notify implements the notification pipeline: it classifies
// content status transitions against the configured decision table,
// resolves recipients from roles and explicit user IDs, renders HTML
// email bodies, and dispatches them through a mail transport. It also
// exposes one method per site administration event (user, plugin, theme,
// core, and security events), each routed to its configured group address.
//
// The pipeline is fire and forget by design: event methods never return
// errors to their callers. A failed send, an unresolvable recipient, or an
// unavailable marker store degrades to "no email" and is logged.
//
// # Usage
//
//	svc, err := notify.New(mgr, dir, sender, markers, site,
//		notify.WithLogger(log),
//		notify.WithContentTypeLabels(map[string]string{"post": "Post"}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Content lifecycle.
//	svc.HandleStatusChange(ctx, notify.StatusDraft, notify.StatusPending, item)
//
//	// Site administration events.
//	svc.UserRegistered(ctx, newUserID)
//	svc.FailedLogin(ctx, "admin", "203.0.113.7")
//
// # Rate limiting
//
// Two paths are deduplicated through the marker store: repeat "updated"
// notifications for the same content item (one hour window) and repeat
// failed-login alerts for the same username (five minute window). Use
// ratelimit.NewRedisStore when several processes handle events for the
// same site; the in-process store only suppresses duplicates seen by one
// process.
//
// # Extension points
//
// Filters let embedding code rewrite the subject, body, or recipient list
// of content notifications before they are sent:
//
//	filters := new(notify.Filters).
//		OnSubject(func(subject string, _ settings.NotificationType, _ notify.Content) string {
//			return "[staging] " + subject
//		})
//	svc, err := notify.New(mgr, dir, sender, markers, site, notify.WithFilters(filters))
package notify
