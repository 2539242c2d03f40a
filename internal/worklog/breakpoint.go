// ABOUTME: Breakpoint scanner over the lines of a daily log
// ABOUTME: Finds the last start/finish record and the last raw line
package worklog

import "strings"

// Breakpoint is the state derived from a full scan of a log: the last line
// and the most recent start or finish record.
type Breakpoint struct {
	LastLine  string
	Timestamp string
	IsFinish  bool
}

// Scan walks lines oldest to newest. Continue records never move the
// breakpoint but still become the last line.
func Scan(lines []string) Breakpoint {
	var bp Breakpoint
	for _, line := range lines {
		switch markerAt(line) {
		case Start:
			bp.Timestamp = timestampOf(line)
			bp.IsFinish = false
		case Finish:
			bp.Timestamp = timestampOf(line)
			bp.IsFinish = true
		}
		bp.LastLine = strings.TrimSpace(line)
	}
	return bp
}
