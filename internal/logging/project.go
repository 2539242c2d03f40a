// ABOUTME: Project log file writing
// ABOUTME: Mirrors worklog records as markdown, JSON or plain lines into daily project logs
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/worklog/internal/worklog"
)

// Supported project log formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPlain    = "plain"
)

// projectRecord is the JSON form of a mirrored record.
type projectRecord struct {
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
	Comment   string `json:"comment"`
	Worktime  string `json:"worktime,omitempty"`
}

// WriteProjectLog appends rec to the project log for the record's day.
// worktime is the phrase shown to the user when the record was written.
func WriteProjectLog(logDir, format string, rec worklog.Record, worktime string) error {
	// Create log directory if needed
	if err := os.MkdirAll(logDir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return err
	}

	// Determine log file name (one per day)
	date := rec.Timestamp.Format("2006-01-02")
	logFile := filepath.Join(logDir, date+".log")

	// Format record
	var content string
	switch format {
	case FormatJSON:
		data, err := json.Marshal(projectRecord{
			Timestamp: rec.Timestamp.Format(worklog.TimestampLayout),
			Kind:      rec.Marker.String(),
			Comment:   rec.Comment,
			Worktime:  worktimeFor(rec, worktime),
		})
		if err != nil {
			return err
		}
		content = string(data) + "\n"
	case FormatPlain:
		content = rec.String() + "\n"
	case FormatMarkdown:
		fallthrough
	default:
		content = formatMarkdown(rec, worktime)
	}

	// Append to file
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // Log files are user-readable
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

// worktimeFor drops the phrase for start records, where it describes the
// previous session rather than this one.
func worktimeFor(rec worklog.Record, worktime string) string {
	if rec.Marker == worklog.Start {
		return ""
	}
	return worktime
}

func formatMarkdown(rec worklog.Record, worktime string) string {
	var sb strings.Builder

	timeStr := rec.Timestamp.Format("15:04:05")
	sb.WriteString(fmt.Sprintf("## %s - %s\n", timeStr, rec.Comment))
	sb.WriteString(fmt.Sprintf("- **Kind**: %s\n", rec.Marker))

	if w := worktimeFor(rec, worktime); w != "" {
		sb.WriteString(fmt.Sprintf("- **Worktime**: %s\n", w))
	}
	sb.WriteString("\n")

	return sb.String()
}
