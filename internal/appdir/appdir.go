// Package appdir provides constants and utilities for the .todolit
// directory structure.
package appdir

import (
	"os"
	"path/filepath"
)

const (
	// Dir is the name of the state directory under the user's home.
	Dir = ".todolit"

	// DefaultConfigFile is the config file name (inside the state dir
	// or the OS config dir).
	DefaultConfigFile = "todolit.toml"

	// DefaultLogDir is the log directory name (inside the state dir).
	DefaultLogDir = "logs"
)

// Default returns the default state directory, rooted at the user's
// home. Falls back to a relative .todolit when home is unknown.
func Default() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dir
	}
	return filepath.Join(home, Dir)
}

// ConfigPath returns the config file path within a state directory.
func ConfigPath(base string) string {
	return filepath.Join(base, DefaultConfigFile)
}

// LogsPath returns the log directory path within a state directory.
func LogsPath(base string) string {
	return filepath.Join(base, DefaultLogDir)
}
