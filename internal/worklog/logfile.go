// ABOUTME: Daily log file access: touch, read, append and remove-last
// ABOUTME: Creates directories lazily and deletes the file once it is emptied
package worklog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LogFile is a single day's log on disk.
type LogFile struct {
	path   string
	remove func(string) error
}

// NewLogFile wraps path without touching the filesystem.
func NewLogFile(path string) *LogFile {
	return &LogFile{path: path, remove: os.Remove}
}

// Path returns the file location.
func (f *LogFile) Path() string {
	return f.path
}

// Empty reports whether the log is missing or has no content.
func (f *LogFile) Empty() (bool, error) {
	info, err := os.Stat(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat log: %w", err)
	}
	return info.Size() == 0, nil
}

// Touch creates the parent directory and the file when absent.
func (f *LogFile) Touch() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // Log files are user-readable
	if err != nil {
		return fmt.Errorf("touch log: %w", err)
	}
	return file.Close()
}

// Content returns the raw file content. A missing file reads as empty.
func (f *LogFile) Content() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	return string(data), nil
}

// Lines returns the file split into lines, each keeping its newline.
func (f *LogFile) Lines() ([]string, error) {
	content, err := f.Content()
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Append writes one line, adding the newline terminator.
func (f *LogFile) Append(line string) error {
	if err := f.Touch(); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_WRONLY, 0644) //nolint:gosec // Log files are user-readable
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return file.Close()
}

// Removal describes the outcome of RemoveLast.
type Removal struct {
	// FileDeleted is set when the log held a single line and was deleted
	// instead of rewritten.
	FileDeleted bool
	// DeleteErr is a failed deletion; callers report it and carry on.
	DeleteErr error
}

// RemoveLast drops the final line of the log.
func (f *LogFile) RemoveLast() (Removal, error) {
	lines, err := f.Lines()
	if err != nil {
		return Removal{}, err
	}
	if len(lines) <= 1 {
		return Removal{FileDeleted: true, DeleteErr: f.remove(f.path)}, nil
	}

	content := strings.Join(lines[:len(lines)-1], "")
	if err := os.WriteFile(f.path, []byte(content), 0644); err != nil { //nolint:gosec // Log files are user-readable
		return Removal{}, fmt.Errorf("rewrite log: %w", err)
	}
	return Removal{}, nil
}
