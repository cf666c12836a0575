package preflight

import (
	"context"

	"mediatable/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	// Optional results never fail the overall run.
	Optional bool
	Detail   string
}

// RunAll executes every preflight check for the given config and scan root.
func RunAll(ctx context.Context, cfg *config.Config, root string) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		CheckDirectoryAccess("Scan directory", root),
		CheckMediainfo(ctx, cfg),
	}
}

// AllPassed reports whether every required result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed && !result.Optional {
			return false
		}
	}
	return true
}
