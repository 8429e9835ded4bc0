package cleanup

// ABOUTME: Run options with built-in defaults, plus validation that turns
// ABOUTME: them into the immutable ScanConfig used by the Scanner.

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Built-in defaults, matching the conventions of JavaScript projects.
const (
	DefaultTargetPattern  = "node_modules"
	DefaultExcludePattern = `^\.`
	DefaultThresholdDays  = 30
)

// MaxThresholdDays is the largest threshold whose duration fits in a
// time.Duration.
const MaxThresholdDays = int(math.MaxInt64 / int64(24*time.Hour))

// DefaultIndicatorFiles returns the default project indicator filenames.
func DefaultIndicatorFiles() []string {
	return []string{"package.json"}
}

// Options holds the full configuration of a cleanup run.
type Options struct {
	RootDir        string
	TargetPattern  string
	ExcludePattern string // empty disables exclusion
	IgnorePaths    []string
	IndicatorFiles []string
	SeparateNested bool
	ThresholdDays  int
	DryRun         bool
	AutoConfirm    bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		RootDir:        ".",
		TargetPattern:  DefaultTargetPattern,
		ExcludePattern: DefaultExcludePattern,
		IndicatorFiles: DefaultIndicatorFiles(),
		ThresholdDays:  DefaultThresholdDays,
	}
}

// Threshold returns the staleness threshold as a duration, capped at
// MaxThresholdDays.
func (o Options) Threshold() time.Duration {
	return time.Duration(min(o.ThresholdDays, MaxThresholdDays)) * 24 * time.Hour
}

// Compile validates the options, normalizes RootDir to a clean absolute
// path and compiles the name patterns. An out-of-range threshold is a
// *UsageError; every other failure is a *ConfigError.
func (o *Options) Compile() (ScanConfig, error) {
	if o.TargetPattern == "" {
		return ScanConfig{}, NewConfigError("target name pattern must not be empty")
	}
	target, err := regexp.Compile(o.TargetPattern)
	if err != nil {
		return ScanConfig{}, NewConfigError("invalid target name pattern %q: %w", o.TargetPattern, err)
	}

	var exclude *regexp.Regexp
	if o.ExcludePattern != "" {
		exclude, err = regexp.Compile(o.ExcludePattern)
		if err != nil {
			return ScanConfig{}, NewConfigError("invalid exclude pattern %q: %w", o.ExcludePattern, err)
		}
	}

	if o.ThresholdDays < 0 {
		return ScanConfig{}, NewUsageError("time threshold must not be negative, got %d days", o.ThresholdDays)
	}
	if o.ThresholdDays > MaxThresholdDays {
		return ScanConfig{}, NewUsageError("time threshold must be at most %d days, got %d", MaxThresholdDays, o.ThresholdDays)
	}

	indicators := nonEmpty(o.IndicatorFiles)
	if len(indicators) == 0 {
		return ScanConfig{}, &ConfigError{Err: ErrNoIndicators}
	}

	root, err := resolveRoot(o.RootDir)
	if err != nil {
		return ScanConfig{}, err
	}
	o.RootDir = root

	return ScanConfig{
		TargetPattern:  target,
		ExcludePattern: exclude,
		IgnorePaths:    nonEmpty(o.IgnorePaths),
		IndicatorFiles: indicators,
		SeparateNested: o.SeparateNested,
	}, nil
}

// resolveRoot makes dir absolute and checks that it is an existing directory.
func resolveRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(expandTilde(dir))
	if err != nil {
		return "", NewConfigError("resolve root directory %q: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &ConfigError{Err: fmt.Errorf("%w: %s", ErrRootNotFound, abs)}
		}
		return "", NewConfigError("stat root directory: %w", err)
	}
	if !info.IsDir() {
		return "", &ConfigError{Err: fmt.Errorf("%w: %s", ErrRootNotDir, abs)}
	}
	return abs, nil
}

// nonEmpty drops empty strings. An empty ignore substring would match every
// path, so it is never meaningful.
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
