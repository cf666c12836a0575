// Package mediainfo provides a typed wrapper around MediaInfo JSON output.
//
// This package has no mediatable-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Document: parsed MediaInfo output, one entry per track
//   - Track: a loosely-typed track record keyed by MediaInfo field name
//   - Client: an extractor bound to a binary and an optional timeout
//
// Primary entry points:
//   - Inspect: executes mediainfo and returns its JSON payload
//   - Parse: decodes a JSON payload into a Document
//
// MediaInfo reports most numeric fields as strings. Numbers that do arrive as
// JSON numbers keep their decimal digit representation so callers can apply
// length-based formatting rules to either form.
package mediainfo
