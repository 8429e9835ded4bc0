package cleanup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// appName names the per-user config directory.
const appName = "nmcleanup"

// DefaultConfigPath returns the config file location under the XDG config
// home ($XDG_CONFIG_HOME, or ~/.config on Linux).
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
