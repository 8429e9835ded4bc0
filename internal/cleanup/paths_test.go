package cleanup

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigPath_XDG(t *testing.T) {
	t.Cleanup(xdg.Reload) // runs after the variables are restored
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	xdg.Reload()

	assert.Equal(t, "/xdg/nmcleanup/config.yaml", DefaultConfigPath())
}

func TestDefaultConfigPath_Home(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("fallback config home is platform specific")
	}
	home := t.TempDir()
	t.Cleanup(xdg.Reload) // runs after the variables are restored
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	xdg.Reload()

	assert.Equal(t, filepath.Join(home, ".config", "nmcleanup", "config.yaml"), DefaultConfigPath())
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "code"), expandTilde("~/code"))
	assert.Equal(t, home, expandTilde("~"))
	assert.Equal(t, "~user/code", expandTilde("~user/code"))
	assert.Equal(t, "/abs/path", expandTilde("/abs/path"))
	assert.Equal(t, "relative", expandTilde("relative"))
}
