// Package logger provides a small slog factory and the attribute helpers
// used across the notification pipeline.
//
// All best-effort failure paths (per-recipient send failures, unreadable
// settings documents, marker store errors) log through these helpers with
// consistent keys, so a single log query can follow one dispatch end to end
// via the dispatch_id attribute.
package logger
