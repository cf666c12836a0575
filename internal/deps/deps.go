package deps

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// versionTimeout bounds how long a version query may run.
const versionTimeout = 5 * time.Second

// ErrNotConfigured is reported for a requirement with a blank command.
var ErrNotConfigured = errors.New("command not configured")

// Requirement names an external program mediatable launches.
type Requirement struct {
	Name     string
	Command  string
	Optional bool
	// VersionArgs make the program print its version, e.g. --Version.
	VersionArgs []string
}

// Status is the outcome of resolving one Requirement.
type Status struct {
	Requirement
	Path    string
	Version string
	// Err is nil when Command was found.
	Err error
}

// Available reports whether the program was found.
func (s Status) Available() bool { return s.Err == nil }

// Resolve locates every requirement on PATH and, where VersionArgs are set,
// records the version the program reports. A failing version query leaves
// Version empty but does not make the program unavailable.
func Resolve(ctx context.Context, reqs ...Requirement) []Status {
	statuses := make([]Status, len(reqs))
	for i, req := range reqs {
		req.Command = strings.TrimSpace(req.Command)
		statuses[i] = resolve(ctx, req)
	}
	return statuses
}

func resolve(ctx context.Context, req Requirement) Status {
	status := Status{Requirement: req}
	if req.Command == "" {
		status.Err = ErrNotConfigured
		return status
	}
	path, err := exec.LookPath(req.Command)
	if err != nil {
		status.Err = fmt.Errorf("binary %q not found: %w", req.Command, err)
		return status
	}
	status.Path = path
	if len(req.VersionArgs) > 0 {
		status.Version = queryVersion(ctx, path, req.VersionArgs)
	}
	return status
}

// queryVersion runs the program and keeps its last non-empty output line,
// trimmed to the part after " - " ("MediaInfoLib - v24.06" gives "v24.06").
func queryVersion(ctx context.Context, path string, args []string) string {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, args...).Output()
	if err != nil {
		return ""
	}
	var version string
	for line := range strings.Lines(string(out)) {
		if line = strings.TrimSpace(line); line != "" {
			version = line
		}
	}
	if _, after, ok := strings.Cut(version, " - "); ok {
		return strings.TrimSpace(after)
	}
	return version
}
