// ABOUTME: User configuration loaded from config.toml
// ABOUTME: Resolves the log root directory, output and sync settings
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvDir overrides the configured log root.
const EnvDir = "WORKLOG_DIR"

// Config holds the settings read from config.toml.
type Config struct {
	Directory string     `toml:"directory"`
	Color     bool       `toml:"color"`
	LogLevel  string     `toml:"log_level"`
	Sync      SyncConfig `toml:"sync"`
}

// SyncConfig configures the Charm backup of daily logs.
type SyncConfig struct {
	CharmHost string `toml:"charm_host"`
	AutoSync  bool   `toml:"auto_sync"`
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(GetConfigHome(), "worklog", "config.toml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Directory: filepath.Join(homeDir(), "Worklog"),
		Color:     true,
		LogLevel:  "warn",
	}
}

// Load reads path over the defaults. A missing file is not an error.
// WORKLOG_DIR takes precedence over the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if dir := os.Getenv(EnvDir); dir != "" {
		cfg.Directory = dir
	}
	cfg.Directory = expandHome(cfg.Directory, homeDir())

	return cfg, nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
