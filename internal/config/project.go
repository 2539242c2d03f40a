// ABOUTME: Project .worklog file detection and config loading
// ABOUTME: Walks directory tree to find the project that mirrors records
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectFile marks a directory whose records are mirrored into a project log.
const ProjectFile = ".worklog"

type ProjectConfig struct {
	LocalLogging bool   `toml:"local_logging" json:"local_logging"`
	LogDir       string `toml:"log_dir" json:"log_dir"`
	LogFormat    string `toml:"log_format" json:"log_format"`
}

// FindProjectRoot walks up from dir looking for a .worklog file
// Returns empty string if not found
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	current := absDir
	for {
		if info, err := os.Stat(filepath.Join(current, ProjectFile)); err == nil && !info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)

		// Stop at filesystem root or home directory
		if parent == current || current == homeDir {
			return "", nil
		}

		current = parent
	}
}

// LoadProjectConfig loads a .worklog config from path
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	var cfg ProjectConfig

	// Set defaults
	cfg.LogDir = "logs"
	cfg.LogFormat = "markdown"

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
