package logging

import (
	"log/slog"
)

// Issue is a problem with one input that the run survives: an unreadable
// directory or a file whose metadata could not be collected.
type Issue struct {
	// Event classifies the line for filtering, e.g. "extract_failed".
	Event string
	// Kind is the error classification: launch, parse, field, or config.
	Kind   string
	Err    error
	Hint   string
	Impact string
}

const (
	defaultHint   = "check logs for details"
	defaultImpact = "file omitted from inventory"
)

// Warn logs issue at warning level followed by args. An empty Hint or Impact
// is replaced with a default so both fields are always present.
func Warn(logger *slog.Logger, msg string, issue Issue, args ...any) {
	if logger == nil {
		return
	}
	hint, impact := issue.Hint, issue.Impact
	if hint == "" {
		hint = defaultHint
	}
	if impact == "" {
		impact = defaultImpact
	}
	attrs := make([]any, 0, 5+len(args))
	attrs = append(attrs, slog.String(FieldEventType, issue.Event))
	if issue.Err != nil {
		attrs = append(attrs, Error(issue.Err))
	}
	if issue.Kind != "" {
		attrs = append(attrs, slog.String(FieldErrorKind, issue.Kind))
	}
	attrs = append(attrs,
		slog.String(FieldErrorHint, hint),
		slog.String(FieldImpact, impact),
	)
	logger.Warn(msg, append(attrs, args...)...)
}

// Error returns the standard "error" attribute for err.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ForComponent tags logger with a component name, rendered as a line prefix
// by the console handler. A nil logger yields a no-op logger.
func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}
