package worklog

import (
	"fmt"
	"path/filepath"
	"time"
)

// WeekOfYear returns the Sunday-based week number; days before the first
// Sunday of the year are in week 0.
func WeekOfYear(t time.Time) int {
	yday := t.YearDay() - 1
	return (yday + 7 - int(t.Weekday())) / 7
}

// PathFor returns root/YYYY/Week WW/YYYY-MM-DD.log for the day of t.
func PathFor(root string, t time.Time) string {
	return filepath.Join(
		root,
		t.Format("2006"),
		fmt.Sprintf("Week %02d", WeekOfYear(t)),
		t.Format("2006-01-02")+".log",
	)
}
