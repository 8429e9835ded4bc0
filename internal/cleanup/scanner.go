package cleanup

// ABOUTME: Single depth-first walk that partitions a tree into projects and
// ABOUTME: records per-project freshness and target/ignored/excluded paths.

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ScanConfig is the immutable matching configuration of a scan.
type ScanConfig struct {
	TargetPattern  *regexp.Regexp // tested against entry base names
	ExcludePattern *regexp.Regexp // tested against entry base names; nil excludes nothing
	IgnorePaths    []string       // literal substrings of the full path
	IndicatorFiles []string
	SeparateNested bool
}

// isIgnored reports whether the full path contains any ignore substring.
func (c ScanConfig) isIgnored(path string) bool {
	for _, ignore := range c.IgnorePaths {
		if strings.Contains(path, ignore) {
			return true
		}
	}
	return false
}

func (c ScanConfig) isTarget(name string) bool {
	return c.TargetPattern != nil && c.TargetPattern.MatchString(name)
}

func (c ScanConfig) isExcluded(name string) bool {
	return c.ExcludePattern != nil && c.ExcludePattern.MatchString(name)
}

// Project is a subtree rooted at a directory containing an indicator file.
type Project struct {
	Path     string
	ModTime  time.Time // newest mtime among the entries attributed to the project
	Targets  []string
	Ignored  []string
	Excluded []string
}

// IsFresh reports whether the project was modified at or after cutoff.
func (p *Project) IsFresh(cutoff time.Time) bool {
	return !p.ModTime.Before(cutoff)
}

// The record helpers accept a nil project: entries found before the first
// project root belong to nobody and are dropped.

func (p *Project) touch(mtime time.Time) {
	if p != nil && mtime.After(p.ModTime) {
		p.ModTime = mtime
	}
}

func (p *Project) addTarget(path string) {
	if p != nil {
		p.Targets = append(p.Targets, path)
	}
}

func (p *Project) addIgnored(path string) {
	if p != nil {
		p.Ignored = append(p.Ignored, path)
	}
}

func (p *Project) addExcluded(path string) {
	if p != nil {
		p.Excluded = append(p.Excluded, path)
	}
}

// Scanner discovers projects below a root directory.
type Scanner struct {
	cfg    ScanConfig
	logger *slog.Logger
}

// NewScanner creates a Scanner. A nil logger uses slog.Default().
func NewScanner(cfg ScanConfig, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{cfg: cfg, logger: logger}
}

// scanState accumulates the projects of one Scan call.
type scanState struct {
	projects []*Project
}

// Scan walks root and returns the discovered projects in discovery order.
// Any directory read or stat failure aborts the scan, since partial data
// would misrepresent freshness. Symlinked directories are not followed.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*Project, error) {
	state := &scanState{}
	if err := s.walk(ctx, state, root, nil, s.isProjectRoot(root)); err != nil {
		return nil, err
	}

	s.logger.Debug("scan complete", "root", root, "projects", len(state.projects))
	return state.projects, nil
}

// walk visits dir under the current project context (nil when no project
// root has been seen on this path). isRoot is precomputed by the caller.
func (s *Scanner) walk(ctx context.Context, state *scanState, dir string, current *Project, isRoot bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if isRoot && (current == nil || s.cfg.SeparateNested) {
		current = &Project{Path: dir}
		state.projects = append(state.projects, current)
		s.logger.Debug("project found", "path", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if s.cfg.isIgnored(path) {
			current.addIgnored(path)
			s.logger.Debug("skip (ignored)", "path", path)
			continue
		}

		nested := entry.IsDir() && s.isProjectRoot(path)

		if !nested && current != nil {
			info, err := entry.Info()
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			current.touch(info.ModTime())
		}

		switch {
		case s.cfg.isTarget(name):
			current.addTarget(path)
			s.logger.Debug("target found", "path", path)
		case s.cfg.isExcluded(name):
			current.addExcluded(path)
			s.logger.Debug("skip (excluded)", "path", path)
		case entry.IsDir():
			if err := s.walk(ctx, state, path, current, nested); err != nil {
				return err
			}
		}
	}

	return nil
}

// isProjectRoot reports whether any indicator file exists directly in dir.
func (s *Scanner) isProjectRoot(dir string) bool {
	for _, name := range s.cfg.IndicatorFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
