// ABOUTME: Tests for XDG directory resolution
// ABOUTME: Validates fallback behavior and path construction
package config

import (
	"path/filepath"
	"testing"
)

func TestGetConfigHome(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		got := GetConfigHome()
		if got != "/custom/config" {
			t.Errorf("got %s, want /custom/config", got)
		}
	})

	t.Run("falls back to HOME/.config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		want := filepath.Join(home, ".config")
		got := GetConfigHome()
		if got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})
}
