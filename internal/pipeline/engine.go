package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"mediatable/internal/inventory"
	"mediatable/internal/logging"
)

// Extractor returns the raw metadata payload for one file.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]byte, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, path string) ([]byte, error)

// Extract calls f.
func (f ExtractorFunc) Extract(ctx context.Context, path string) ([]byte, error) {
	return f(ctx, path)
}

// Failure records a path whose unit of work did not produce a record.
type Failure struct {
	Path string
	Err  error
}

// Result is the outcome of one Collect call. Records are in completion order.
type Result struct {
	Records  []inventory.MediaRecord
	Failures []Failure
	// Skipped lists files whose metadata had no container track.
	Skipped []string
}

// Engine runs extraction work with bounded parallelism.
type Engine struct {
	extractor Extractor
	workers   int
	logger    *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithWorkers sets the maximum number of concurrent units. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = max(n, 1)
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an engine around the extractor.
func New(extractor Extractor, opts ...Option) *Engine {
	e := &Engine{
		extractor: extractor,
		workers:   1,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.ForComponent(e.logger, "pipeline")
	return e
}

// Workers reports the configured pool size.
func (e *Engine) Workers() int {
	return e.workers
}

type outcome struct {
	path    string
	record  inventory.MediaRecord
	skipped bool
	err     error
}

// Collect processes every path and blocks until all units have finished.
// Cancelling ctx stops new units from starting; paths that never ran are
// reported as failures carrying the context error.
func (e *Engine) Collect(ctx context.Context, paths []string) Result {
	started := time.Now()
	outcomes := make(chan outcome, e.workers)
	done := make(chan Result, 1)

	go func() {
		var result Result
		for o := range outcomes {
			switch {
			case o.err != nil:
				result.Failures = append(result.Failures, Failure{Path: o.path, Err: o.err})
			case o.skipped:
				result.Skipped = append(result.Skipped, o.path)
			default:
				result.Records = append(result.Records, o.record)
			}
		}
		done <- result
	}()

	var group errgroup.Group
	group.SetLimit(e.workers)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			outcomes <- outcome{path: path, err: err}
			continue
		}
		group.Go(func() error {
			outcomes <- e.process(ctx, path)
			return nil
		})
	}
	_ = group.Wait()
	close(outcomes)

	result := <-done
	logging.ForRun(ctx, e.logger).Info("inventory collected",
		slog.Int("files", len(paths)),
		slog.Int("records", len(result.Records)),
		slog.Int("failed", len(result.Failures)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("workers", e.workers),
		slog.Duration("elapsed", time.Since(started)),
	)
	return result
}

func (e *Engine) process(ctx context.Context, path string) outcome {
	logger := logging.ForRun(ctx, e.logger).With(slog.String(logging.FieldPath, path))

	if err := ctx.Err(); err != nil {
		return outcome{path: path, err: err}
	}

	payload, err := e.extractor.Extract(ctx, path)
	if err != nil {
		err = inventory.Wrap(inventory.ErrExtractionLaunch, path, "extract metadata", err)
		logging.Warn(logger, "metadata extraction failed", logging.Issue{
			Event: "extract_failed",
			Kind:  inventory.Kind(err),
			Err:   err,
			Hint:  "verify mediainfo is installed and the file is readable",
		})
		return outcome{path: path, err: err}
	}

	parsed, err := inventory.Parse(filepath.Base(path), payload)
	if err != nil {
		logging.Warn(logger, "metadata unreadable", logging.Issue{
			Event: "parse_failed",
			Kind:  inventory.Kind(err),
			Err:   err,
			Hint:  "run mediainfo --Output=JSON on the file to inspect its output",
		})
		return outcome{path: path, err: err}
	}
	if !parsed.HasContainer {
		logger.Debug("no container track; skipping")
		return outcome{path: path, skipped: true}
	}
	for _, warning := range parsed.Warnings {
		logger.Debug("field fallback applied", logging.Error(warning))
	}

	record := parsed.Record
	record.Path = path
	return outcome{path: path, record: record}
}
