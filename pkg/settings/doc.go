// Package settings defines the notification pipeline's single configuration
// document and its lifecycle.
//
// The document is a typed schema (Settings) with defaulting centralized in
// Default and Normalize, persisted as JSON through the Store interface.
// Writes only happen through Manager.Save, which enforces an anti-forgery
// token and a manage permission via Guard, then sanitizes the submitted
// document field by field: unknown enum keys, stale roles, missing user IDs
// and invalid email addresses are silently dropped. SMTP account passwords
// are the one deliberate exception and pass through verbatim so special
// characters survive.
//
// Two stores ship with the package: MemoryStore for development and tests,
// and RedisStore for shared deployments. Both are last-write-wins.
package settings
