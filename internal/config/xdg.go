// ABOUTME: XDG Base Directory specification helpers
// ABOUTME: Resolves the config directory with a home fallback
package config

import (
	"os"
	"path/filepath"
)

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".config")
}

// homeDir prefers $HOME so tests can redirect it.
func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
