package cleanup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDangerousDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.True(t, IsDangerousDir("/"))
	assert.True(t, IsDangerousDir("/usr"))
	assert.True(t, IsDangerousDir(home))
	assert.False(t, IsDangerousDir(filepath.Join(home, "code", "node_modules")))
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		root, path string
		want       bool
	}{
		{"/work", "/work/a", true},
		{"/work", "/work/a/b", true},
		{"/work", "/work", false},
		{"/work", "/workshop/a", false},
		{"/work", "/other", false},
		{"/", "/work", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isWithin(tt.root, tt.path), "isWithin(%q, %q)", tt.root, tt.path)
	}
}

func TestCheckTarget(t *testing.T) {
	root := t.TempDir()

	assert.NoError(t, checkTarget(root, filepath.Join(root, "p", "node_modules")))
	assert.ErrorIs(t, checkTarget(root, "p/node_modules"), ErrUnsafeTarget)
	assert.ErrorIs(t, checkTarget(root, root), ErrUnsafeTarget)
	assert.ErrorIs(t, checkTarget(root, root+"/p/../../escape"), ErrUnsafeTarget)
	assert.ErrorIs(t, checkTarget("/", "/usr"), ErrUnsafeTarget)
}

func TestCheckTarget_SymlinkToProtectedDirIsAllowed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	root := t.TempDir()

	link := filepath.Join(root, "p", "node_modules")
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0750))
	require.NoError(t, os.Symlink(home, link))

	assert.NoError(t, checkTarget(root, link))
	assert.True(t, IsDangerousDir(link), "the resolved destination is still protected")
}
