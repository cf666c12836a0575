package inventory

import (
	"errors"
	"fmt"
	"strings"

	"mediatable/internal/media/mediainfo"
)

var (
	ErrExtractionLaunch = errors.New("extraction launch error")
	ErrExtractionParse  = errors.New("extraction parse error")
	ErrMissingField     = errors.New("missing field")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrFatalConfig      = errors.New("configuration error")
)

// Error kinds reported by Kind.
const (
	KindLaunch  = "launch"
	KindParse   = "parse"
	KindField   = "field"
	KindConfig  = "config"
	KindUnknown = "unknown"
)

// Wrap builds an error message that includes path and operation context while
// tagging it with the provided marker. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, path, operation string, err error) error {
	detail := buildDetail(path, operation)
	if marker == nil {
		marker = ErrExtractionParse
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind classifies an error for log fields and exit handling.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrExtractionLaunch), errors.Is(err, mediainfo.ErrLaunch):
		return KindLaunch
	case errors.Is(err, ErrExtractionParse), errors.Is(err, mediainfo.ErrMalformed):
		return KindParse
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidNumber):
		return KindField
	case errors.Is(err, ErrFatalConfig):
		return KindConfig
	default:
		return KindUnknown
	}
}

func fieldError(marker error, track, field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s.%s", marker, track, field)
	}
	return fmt.Errorf("%w: %s.%s=%q", marker, track, field, value)
}

func buildDetail(path, operation string) string {
	parts := make([]string, 0, 2)
	if path = strings.TrimSpace(path); path != "" {
		parts = append(parts, path)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "inventory failure"
	}
	return strings.Join(parts, ": ")
}
