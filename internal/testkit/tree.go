// Package testkit provides filesystem fixtures for tests.
package testkit

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Old is the default age, in days, of a fixture entry.
const Old = 1000

// Entry describes one fixture path. Paths ending in "/" are directories,
// everything else is an empty file.
type Entry struct {
	Path    string // relative to the tree root, slash separated
	DaysAgo int    // zero means Old
	Delete  bool   // expected to be removed by a cleanup run
}

// Tree is a materialized fixture.
type Tree struct {
	Root    string
	Entries []Entry
}

// BuildTree creates entries under a fresh temp dir. Each entry's mtime, and
// the mtime of every parent up to (not including) the root, is set to
// DaysAgo. Entries are applied oldest first so a parent ends up with the
// age of its newest descendant.
func BuildTree(t *testing.T, entries ...Entry) *Tree {
	t.Helper()
	root := t.TempDir()

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	for i := range sorted {
		if sorted[i].DaysAgo == 0 {
			sorted[i].DaysAgo = Old
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].DaysAgo > sorted[j].DaysAgo })

	now := time.Now()
	for _, e := range sorted {
		full := filepath.Join(root, filepath.FromSlash(e.Path))
		if strings.HasSuffix(e.Path, "/") {
			require.NoError(t, os.MkdirAll(full, 0750))
		} else {
			require.NoError(t, os.MkdirAll(filepath.Dir(full), 0750))
			require.NoError(t, os.WriteFile(full, nil, 0600))
		}

		mtime := now.Add(-time.Duration(e.DaysAgo) * 24 * time.Hour)
		for p := filepath.Clean(full); p != root; p = filepath.Dir(p) {
			require.NoError(t, os.Chtimes(p, mtime, mtime))
		}
	}

	return &Tree{Root: root, Entries: entries}
}

// Path returns the absolute path of a fixture-relative path.
func (tr *Tree) Path(rel string) string {
	return filepath.Join(tr.Root, filepath.FromSlash(strings.TrimSuffix(rel, "/")))
}

// AssertCleaned checks that exactly the entries marked Delete are gone and
// every other entry still exists.
func (tr *Tree) AssertCleaned(t *testing.T) {
	t.Helper()
	for _, e := range tr.Entries {
		_, err := os.Lstat(tr.Path(e.Path))
		if e.Delete {
			require.True(t, os.IsNotExist(err), "%s should have been deleted", e.Path)
		} else {
			require.NoError(t, err, "%s should have been preserved", e.Path)
		}
	}
}

// AssertUntouched checks that every entry still exists.
func (tr *Tree) AssertUntouched(t *testing.T) {
	t.Helper()
	for _, e := range tr.Entries {
		_, err := os.Lstat(tr.Path(e.Path))
		require.NoError(t, err, "%s should still exist", e.Path)
	}
}

// Expected returns the absolute paths of the entries marked Delete, in
// declaration order.
func (tr *Tree) Expected() []string {
	var paths []string
	for _, e := range tr.Entries {
		if e.Delete {
			paths = append(paths, tr.Path(e.Path))
		}
	}
	return paths
}
