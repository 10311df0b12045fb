// Package ratelimit provides the short-lived dedup markers that keep
// repeated events from flooding recipients: one hour per content item for
// "updated" notifications, five minutes per username for failed logins.
//
// Store.Acquire is an atomic set-if-absent, so the suppression window opens
// before the email is sent and concurrent duplicate events race for a
// single marker instead of both firing. MemoryStore serves single-process
// deployments; RedisStore (SET NX) extends the guarantee across processes.
package ratelimit
