package preflight

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"

	"mediatable/internal/config"
	"mediatable/internal/deps"
	"mediatable/internal/inventory"
)

// CheckDirectoryAccess verifies that path is a directory the scanner can list
// and descend into.
func CheckDirectoryAccess(name, path string) Result {
	result := Result{Name: name}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Detail = path + " (error: does not exist)"
	case err != nil:
		result.Detail = path + " (error: stat: " + err.Error() + ")"
	case !info.IsDir():
		result.Detail = path + " (error: is not a directory)"
	default:
		if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
			result.Detail = path + " (error: cannot list: " + err.Error() + ")"
			break
		}
		result.Passed = true
		result.Detail = path + " (read ok)"
	}
	return result
}

// RequireDirectory returns an error tagged with inventory.ErrFatalConfig when
// path is not an existing directory.
func RequireDirectory(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return inventory.Wrap(inventory.ErrFatalConfig, path, "no such directory", nil)
	case err != nil:
		return inventory.Wrap(inventory.ErrFatalConfig, path, "stat", err)
	case !info.IsDir():
		return inventory.Wrap(inventory.ErrFatalConfig, path, "no such directory", nil)
	}
	return nil
}

// CheckMediainfo resolves the configured mediainfo binary and its version.
func CheckMediainfo(ctx context.Context, cfg *config.Config) Result {
	status := deps.Resolve(ctx, deps.Requirement{
		Name:        "MediaInfo",
		Command:     cfg.MediainfoBinary(),
		VersionArgs: []string{"--Version"},
	})[0]

	result := Result{Name: status.Name, Passed: status.Available(), Optional: status.Optional}
	switch {
	case !status.Available():
		result.Detail = status.Err.Error()
	case status.Version != "":
		result.Detail = status.Path + " (" + status.Version + ")"
	default:
		result.Detail = status.Path
	}
	return result
}
