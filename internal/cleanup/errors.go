package cleanup

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for cleanup operations.
var (
	ErrRootNotFound   = errors.New("root directory does not exist")
	ErrRootNotDir     = errors.New("root path is not a directory")
	ErrNoIndicators   = errors.New("at least one project indicator file is required")
	ErrUnsafeTarget   = errors.New("refusing to remove unsafe target")
	ErrConfigNotFound = errors.New("config file not found")
)

// UsageError indicates bad arguments or flag values (exit code 2).
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// NewUsageError wraps a message as a UsageError.
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ConfigError indicates a configuration problem detected before any
// traversal starts (exit code 3).
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError wraps a message as a ConfigError.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}

// RemovalFailure records a target that could not be removed.
type RemovalFailure struct {
	Path string
	Err  error
}

// EliminationError aggregates every failed removal of a batch.
type EliminationError struct {
	Failures []RemovalFailure
}

func (e *EliminationError) Error() string {
	paths := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		paths[i] = f.Path
	}
	return fmt.Sprintf("failed to remove %d target(s): %s", len(e.Failures), strings.Join(paths, ", "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *EliminationError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}
