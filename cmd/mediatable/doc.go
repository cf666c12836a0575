// Package main hosts the mediatable CLI entrypoint and command graph.
//
// The root command scans a directory for media files, inspects each one with
// mediainfo through the bounded inventory pipeline, and prints the ordered
// table to stdout. Subcommands cover preflight checks and configuration
// scaffolding. Logs and diagnostics go to stderr.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
