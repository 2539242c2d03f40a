// ABOUTME: Elapsed-time phrases relative to the last breakpoint
// ABOUTME: Formats deltas as H:MM:SS or "D day(s), H:MM:SS"
package worklog

import (
	"fmt"
	"time"
)

const (
	msgWorktimeError = "Error calculating total working time."
	secondsPerDay    = 24 * 60 * 60
)

// FormatDelta renders d with sub-second precision dropped. Negative deltas
// keep a non-negative clock part and a negative day count ("-1 day, 23:59:59").
func FormatDelta(d time.Duration) string {
	secs := int64(d / time.Second)
	if d%time.Second < 0 {
		secs--
	}
	days := secs / secondsPerDay
	rem := secs % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
		days--
	}
	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, rem/60%60, rem%60)
	if days == 0 {
		return clock
	}
	unit := "days"
	if days == 1 || days == -1 {
		unit = "day"
	}
	return fmt.Sprintf("%d %s, %s", days, unit, clock)
}

// WorktimeString describes the time since the breakpoint at now. The
// timestamp is read in now's location.
func WorktimeString(bp Breakpoint, now time.Time) string {
	if bp.Timestamp == "" {
		return msgWorktimeError
	}
	at, err := time.ParseInLocation(TimestampLayout, bp.Timestamp, now.Location())
	if err != nil {
		return msgWorktimeError
	}
	delta := FormatDelta(now.Sub(at))
	if bp.IsFinish {
		return "Avoiding work since " + delta + "."
	}
	return "Total of " + delta + "."
}
