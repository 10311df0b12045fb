// Package config loads environment-based configuration structs.
//
// It wraps godotenv (one .env load per process) and caarlos0/env (struct tag
// parsing). Runtime behavior of the notification pipeline is configured
// through the settings document instead; this package only covers process
// level concerns such as transport credentials.
package config
