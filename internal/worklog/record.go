// ABOUTME: Fixed-width log record format (timestamp, marker, comment)
// ABOUTME: Parses and serializes single tab-separated log lines
package worklog

import (
	"strings"
	"time"
)

// TimestampLayout is the second-precision layout of the first field of every record.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	timestampEnd = 19 // bytes 0-18
	markerOffset = 20
	// minCommandLine is the shortest trimmed line that still counts as a record
	// when deciding the next command.
	minCommandLine = 23
)

// Marker tags a record as the start, continuation or end of a work session.
type Marker byte

const (
	Start    Marker = 'S'
	Continue Marker = '|'
	Finish   Marker = 'F'
)

func (m Marker) String() string {
	switch m {
	case Start:
		return "start"
	case Continue:
		return "continue"
	case Finish:
		return "finish"
	default:
		return "unknown"
	}
}

// ParseMarker accepts the raw marker character or a marker name.
func ParseMarker(s string) (Marker, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "start":
		return Start, true
	case "|", "c", "continue":
		return Continue, true
	case "f", "finish":
		return Finish, true
	}
	return 0, false
}

// Record is one line of a daily log.
type Record struct {
	Timestamp time.Time
	Marker    Marker
	Comment   string
}

// String serializes the record without its trailing newline.
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.Timestamp.Format(TimestampLayout))
	sb.WriteByte('\t')
	sb.WriteByte(byte(r.Marker))
	sb.WriteByte('\t')
	sb.WriteString(r.Comment)
	return sb.String()
}

// markerAt returns the marker byte of a raw line, or 0 when the line is too short.
func markerAt(line string) Marker {
	if len(line) <= markerOffset {
		return 0
	}
	return Marker(line[markerOffset])
}

// timestampOf returns the raw timestamp field of a line, or "" when the line is too short.
func timestampOf(line string) string {
	if len(line) < timestampEnd {
		return ""
	}
	return line[:timestampEnd]
}

// ParseRecord parses a raw line in loc. ok is false for lines that do not
// follow the fixed-width format.
func ParseRecord(line string, loc *time.Location) (Record, bool) {
	line = strings.TrimRight(line, "\r\n")
	m := markerAt(line)
	if m != Start && m != Continue && m != Finish {
		return Record{}, false
	}
	if line[timestampEnd] != '\t' || (len(line) > markerOffset+1 && line[markerOffset+1] != '\t') {
		return Record{}, false
	}
	ts, err := time.ParseInLocation(TimestampLayout, line[:timestampEnd], loc)
	if err != nil {
		return Record{}, false
	}
	var comment string
	if len(line) > markerOffset+2 {
		comment = line[markerOffset+2:]
	}
	return Record{Timestamp: ts, Marker: m, Comment: comment}, true
}

// NormalizeComment joins comment words with single spaces. Tabs and newlines
// would break the line format and are replaced by spaces.
func NormalizeComment(args []string) string {
	joined := strings.Join(args, " ")
	joined = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(joined)
	return strings.TrimSpace(joined)
}

// closesSentence reports whether the comment already ends in punctuation, so
// a finish suffix only needs a separating space.
func closesSentence(comment string) bool {
	if comment == "" {
		return false
	}
	return strings.ContainsRune(".,:;!?", rune(comment[len(comment)-1]))
}

// finishComment appends the worktime phrase to a finish comment.
func finishComment(comment, worktime string) string {
	if closesSentence(comment) {
		return comment + " " + worktime
	}
	return comment + ". " + worktime
}
