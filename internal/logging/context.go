package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Structured field keys shared by every mediatable log line.
const (
	FieldComponent = "component"
	// FieldRunID identifies one inventory run.
	FieldRunID = "run_id"
	// FieldPath is the media file being processed.
	FieldPath      = "path"
	FieldEventType = "event_type"
	FieldErrorHint = "error_hint"
	// FieldErrorKind carries the error classification (launch, parse, field, config).
	FieldErrorKind = "error_kind"
	FieldImpact    = "impact"
)

type runIDKey struct{}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID attaches a run identifier to ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier stored on ctx, if any.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// ForRun returns logger tagged with the run identifier carried by ctx.
func ForRun(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := RunIDFromContext(ctx); ok {
		return logger.With(slog.String(FieldRunID, id))
	}
	return logger
}
