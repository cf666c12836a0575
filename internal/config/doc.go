// Package config loads, normalizes, and validates mediatable configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MEDIAINFO_BINARY. Command-line flags override values loaded here; the
// package only describes the persistent defaults.
//
// Always obtain settings through this package so downstream code receives
// canonical formats and clear validation errors.
package config
