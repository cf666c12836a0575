package mediainfo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the executable resolved from PATH when no binary is configured.
const DefaultBinary = "mediainfo"

var (
	// ErrLaunch marks failures to start or run the mediainfo process.
	ErrLaunch = errors.New("mediainfo launch failed")
	// ErrMalformed marks payloads that are not valid MediaInfo JSON.
	ErrMalformed = errors.New("mediainfo output malformed")
)

// Track types reported in the "@type" field.
const (
	TypeGeneral = "General"
	TypeVideo   = "Video"
	TypeAudio   = "Audio"
	TypeText    = "Text"
)

// Document represents the parsed output of a single MediaInfo inspection.
type Document struct {
	Ref    string
	Tracks []Track
}

// Track is a single MediaInfo track record keyed by field name.
type Track map[string]any

type rawDocument struct {
	Media *struct {
		Ref    string  `json:"@ref"`
		Tracks []Track `json:"track"`
	} `json:"media"`
}

// Type returns the track kind ("General", "Video", ...), or "" when absent.
func (t Track) Type() string {
	value, _ := t.Field("@type")
	return value
}

// Field returns the textual value of a string or numeric field. The boolean is
// false when the field is absent, null, or not a scalar.
func (t Track) Field(name string) (string, bool) {
	raw, ok := t[name]
	if !ok || raw == nil {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return fmt.Sprint(v), true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// Inspect executes mediainfo against the provided path and returns the raw JSON payload.
func Inspect(ctx context.Context, binary string, path string) ([]byte, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrLaunch)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "--Output=JSON", path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stdout.Len() > 0 && ctx.Err() == nil {
			return stdout.Bytes(), nil
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrLaunch, binary, err)
		}
		return nil, fmt.Errorf("%w: %s: %w: %s", ErrLaunch, binary, err, detail)
	}
	return stdout.Bytes(), nil
}

// Parse decodes a MediaInfo JSON payload. A payload without a "media" object
// yields an empty Document rather than an error.
func Parse(data []byte) (Document, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw rawDocument
	if err := decoder.Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected second value")
		}
		return Document{}, fmt.Errorf("%w: trailing data: %w", ErrMalformed, err)
	}
	if raw.Media == nil {
		return Document{}, nil
	}
	tracks := make([]Track, 0, len(raw.Media.Tracks))
	for _, track := range raw.Media.Tracks {
		if track != nil {
			tracks = append(tracks, track)
		}
	}
	return Document{Ref: raw.Media.Ref, Tracks: tracks}, nil
}

// Client runs mediainfo with a fixed binary and an optional per-file timeout.
type Client struct {
	Binary  string
	Timeout time.Duration
}

// Extract inspects one file. A zero Timeout leaves the call bounded only by ctx.
func (c Client) Extract(ctx context.Context, path string) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	return Inspect(ctx, c.Binary, path)
}
