// Package logging builds the slog loggers used by mediatable.
//
// The console handler prints one readable line per record with the
// component as a prefix; the JSON handler emits one object per line. Warn
// records per-file problems with a fixed set of fields (event_type,
// error_kind, error_hint, impact) and ForRun tags lines with the run
// identifier.
//
// Logs default to stderr so stdout stays reserved for the inventory table.
package logging
