package cleanup

// ABOUTME: Sequential best-effort removal of resolved targets, scoped to
// ABOUTME: the scan root and guarded against protected directories.

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// Elimination reports the outcome of an Eliminate call.
type Elimination struct {
	Removed  []string
	Failures []RemovalFailure
}

// Eliminator removes targets below a root directory.
type Eliminator struct {
	root      string
	logger    *slog.Logger
	removeAll func(path string) error
	progress  func(path string)
}

// EliminatorOption configures an Eliminator.
type EliminatorOption func(*Eliminator)

// WithProgress registers a callback invoked after each successful removal.
func WithProgress(fn func(path string)) EliminatorOption {
	return func(e *Eliminator) { e.progress = fn }
}

// WithRemoveFunc replaces os.RemoveAll.
func WithRemoveFunc(fn func(path string) error) EliminatorOption {
	return func(e *Eliminator) { e.removeAll = fn }
}

// NewEliminator creates an Eliminator that only removes paths strictly
// inside root. A nil logger uses slog.Default().
func NewEliminator(root string, logger *slog.Logger, opts ...EliminatorOption) *Eliminator {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Eliminator{
		root:      filepath.Clean(root),
		logger:    logger,
		removeAll: os.RemoveAll,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eliminate recursively removes each target in order. Missing targets count
// as removed. A failing target does not stop the batch: every failure is
// collected and returned as an *EliminationError. Cancelling ctx stops
// before the next target and returns ctx.Err().
func (e *Eliminator) Eliminate(ctx context.Context, targets []string) (Elimination, error) {
	var result Elimination

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := checkTarget(e.root, target); err != nil {
			e.fail(&result, target, err)
			continue
		}

		if err := e.removeAll(target); err != nil {
			e.fail(&result, target, err)
			continue
		}

		result.Removed = append(result.Removed, target)
		e.logger.Debug("target removed", "path", target)
		if e.progress != nil {
			e.progress(target)
		}
	}

	if len(result.Failures) > 0 {
		return result, &EliminationError{Failures: result.Failures}
	}
	return result, nil
}

func (e *Eliminator) fail(result *Elimination, target string, err error) {
	result.Failures = append(result.Failures, RemovalFailure{Path: target, Err: err})
	e.logger.Warn("remove target failed", "path", target, "error", err)
}
