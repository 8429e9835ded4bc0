package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dangerousDirs is the set of paths that must never be removed, whatever
// the patterns say.
var dangerousDirs = map[string]bool{
	"/":             true,
	"/usr":          true,
	"/etc":          true,
	"/var":          true,
	"/boot":         true,
	"/bin":          true,
	"/sbin":         true,
	"/lib":          true,
	"/System":       true,
	"/Library":      true,
	"/Applications": true,
}

// IsDangerousDir reports whether absPath is a system directory or the
// user's home directory. Resolves symlinks before checking.
func IsDangerousDir(absPath string) bool {
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		resolved = absPath
	}

	// Check both original and resolved paths (e.g., /bin → /usr/bin).
	if dangerousDirs[absPath] || dangerousDirs[resolved] {
		return true
	}

	home, err := os.UserHomeDir()
	if err == nil && (resolved == home || absPath == home) {
		return true
	}

	return false
}

// isDangerousLink reports whether the symlink at absPath itself sits at a
// protected location. The link's destination is irrelevant since removing a
// link never touches what it points to.
func isDangerousLink(absPath string) bool {
	if dangerousDirs[absPath] {
		return true
	}
	home, err := os.UserHomeDir()
	return err == nil && absPath == home
}

// isWithin reports whether path lies strictly below root. Both must be
// clean absolute paths; the comparison is lexical.
func isWithin(root, path string) bool {
	if root == path {
		return false
	}
	if root == string(filepath.Separator) {
		return strings.HasPrefix(path, root)
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}

// checkTarget returns an ErrUnsafeTarget error when target may not be
// removed by an eliminator scoped to root.
func checkTarget(root, target string) error {
	if !filepath.IsAbs(target) {
		return fmt.Errorf("%w: %s is not an absolute path", ErrUnsafeTarget, target)
	}
	clean := filepath.Clean(target)
	dangerous := IsDangerousDir
	if info, err := os.Lstat(clean); err == nil && info.Mode()&os.ModeSymlink != 0 {
		dangerous = isDangerousLink
	}
	if dangerous(clean) {
		return fmt.Errorf("%w: %s is a protected directory", ErrUnsafeTarget, clean)
	}
	if !isWithin(root, clean) {
		return fmt.Errorf("%w: %s is outside %s", ErrUnsafeTarget, clean, root)
	}
	return nil
}
