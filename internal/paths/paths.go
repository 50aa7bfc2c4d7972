package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "cubeci"

	// File name of the project-local configuration file.
	LocalConfigName = "cubeci.yaml"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the user-level configuration directory.
//
//	Linux:   $XDG_CONFIG_HOME/cubeci or ~/.config/cubeci
//	macOS:   ~/Library/Application Support/cubeci
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, toolName)
}

// Default path to the user-level configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/cubeci/config.yaml
//	macOS:   ~/Library/Application Support/cubeci/config.yaml
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Returns the configuration files to try, in priority order.
//
// The project-local cubeci.yaml in the working directory wins over the
// user-level file so a checkout can pin its own matrix.
func ConfigSearch(workdir string) []string {
	return []string{
		filepath.Join(workdir, LocalConfigName),
		ConfigFile(),
	}
}
