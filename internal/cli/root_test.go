// ABOUTME: Unit tests for the root command
// ABOUTME: Runs the worklog CLI end to end against a temp log root
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harper/worklog/internal/config"
	"github.com/harper/worklog/internal/worklog"
)

// setupEnv points the CLI at an empty config home and log root.
func setupEnv(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Worklog")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvDir, root)
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func todayLog(t *testing.T, root string) string {
	t.Helper()
	data, err := os.ReadFile(worklog.PathFor(root, time.Now()))
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	return string(data)
}

func TestRootCommand(t *testing.T) {
	t.Run("has correct metadata", func(t *testing.T) {
		cmd := NewRootCommand()
		if !strings.HasPrefix(cmd.Use, "worklog") {
			t.Errorf("expected Use to start with 'worklog', got: %s", cmd.Use)
		}
		for _, name := range []string{"dump", "status", "remove-record", "finish"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected --%s flag", name)
			}
		}
	})

	t.Run("has subcommands registered", func(t *testing.T) {
		want := map[string]bool{"list": false, "search": false, "sync": false, "mcp": false}
		for _, c := range NewRootCommand().Commands() {
			if _, ok := want[c.Name()]; ok {
				want[c.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected root command to have %q subcommand registered", name)
			}
		}
	})
}

func TestCommentFlow(t *testing.T) {
	root := setupEnv(t)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out != "You forgot to comment. :)\n" {
		t.Errorf("got %q", out)
	}

	out, err = execute(t, "-s")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out != "No work logged today.\n" {
		t.Errorf("got %q", out)
	}

	out, err = execute(t, "Fixed", "bug")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out != "Started.\n" {
		t.Errorf("got %q, want Started.", out)
	}
	if !strings.HasSuffix(todayLog(t, root), "\tS\tFixed bug\n") {
		t.Errorf("unexpected log content: %q", todayLog(t, root))
	}

	out, err = execute(t, "more", "work")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.HasPrefix(out, "Continuing. Total of ") {
		t.Errorf("got %q, want Continuing.", out)
	}

	out, err = execute(t, "--finish", "Shipped.")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !strings.HasPrefix(out, "Stopped. Total of ") {
		t.Errorf("got %q, want Stopped.", out)
	}

	out, err = execute(t, "-d")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[3], "Avoiding work since ") {
		t.Errorf("unexpected dump output: %q", out)
	}

	out, err = execute(t, "-r")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out != "Removed last record from the log.\n" {
		t.Errorf("got %q", out)
	}
}

func TestRemoveToEmpty(t *testing.T) {
	root := setupEnv(t)

	if _, err := execute(t, "only", "record"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	out, err := execute(t, "--remove-record")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out != "Removed the log (since it was empty).\n" {
		t.Errorf("got %q", out)
	}
	if _, err := os.Stat(worklog.PathFor(root, time.Now())); !os.IsNotExist(err) {
		t.Errorf("expected log to be deleted, stat err: %v", err)
	}

	out, err = execute(t, "-d")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out != "No work logged today.\n" {
		t.Errorf("got %q", out)
	}
}

func TestDoubleDashLogsSubcommandNames(t *testing.T) {
	root := setupEnv(t)

	out, err := execute(t, "--", "list", "the", "bugs")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out != "Started.\n" {
		t.Errorf("got %q", out)
	}
	if !strings.HasSuffix(todayLog(t, root), "\tS\tlist the bugs\n") {
		t.Errorf("unexpected log content: %q", todayLog(t, root))
	}
}

func TestProjectMirror(t *testing.T) {
	setupEnv(t)

	project := t.TempDir()
	cfg := "local_logging = true\nlog_format = \"plain\"\n"
	if err := os.WriteFile(filepath.Join(project, config.ProjectFile), []byte(cfg), 0644); err != nil { //nolint:gosec // Test file permissions
		t.Fatalf("write project config: %v", err)
	}
	t.Chdir(project)

	if _, err := execute(t, "mirrored", "comment"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	mirror := filepath.Join(project, "logs", time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(mirror)
	if err != nil {
		t.Fatalf("expected project log: %v", err)
	}
	if !strings.HasSuffix(string(data), "\tS\tmirrored comment\n") {
		t.Errorf("unexpected project log: %q", data)
	}
}
