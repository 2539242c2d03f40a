// ABOUTME: Access to past daily logs under the log root
// ABOUTME: Lists day files, summarizes them, and searches records across days
package worklog

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Day is one daily log found under the root.
type Day struct {
	Date time.Time
	Path string
}

// DaySummary describes the records of a single day.
type DaySummary struct {
	Day
	Records  int
	First    time.Time
	Last     time.Time
	Finished bool
}

// Days returns every YYYY-MM-DD.log under root, newest first. A missing root
// has no days.
func Days(root string, loc *time.Location) ([]Day, error) {
	var days []Day
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == root {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".log" {
			return nil
		}
		date, err := time.ParseInLocation("2006-01-02", strings.TrimSuffix(d.Name(), ".log"), loc)
		if err != nil {
			return nil
		}
		days = append(days, Day{Date: date, Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	return days, nil
}

// Records parses the records of a day, skipping malformed lines.
func (d Day) Records() ([]Record, error) {
	lines, err := NewLogFile(d.Path).Lines()
	if err != nil {
		return nil, err
	}
	loc := d.Date.Location()
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		if rec, ok := ParseRecord(line, loc); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Summarize counts the records of a day and finds its time span.
func (d Day) Summarize() (DaySummary, error) {
	records, err := d.Records()
	if err != nil {
		return DaySummary{}, err
	}
	sum := DaySummary{Day: d, Records: len(records)}
	if len(records) == 0 {
		return sum, nil
	}
	sum.First = records[0].Timestamp
	sum.Last = records[len(records)-1].Timestamp
	sum.Finished = records[len(records)-1].Marker == Finish
	return sum, nil
}

// Filter selects records across days.
type Filter struct {
	Text   string
	Marker Marker
	Since  *time.Time
	Until  *time.Time
}

// Match is a record found by Search.
type Match struct {
	Day    Day
	Record Record
}

// Search returns matching records, newest day first and in file order within
// a day. limit <= 0 means no limit.
func Search(root string, loc *time.Location, filter Filter, limit int) ([]Match, error) {
	days, err := Days(root, loc)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, day := range days {
		if filter.Since != nil && day.Date.Add(24*time.Hour).Before(*filter.Since) {
			continue
		}
		if filter.Until != nil && day.Date.After(*filter.Until) {
			continue
		}
		records, err := day.Records()
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			if !filter.matches(rec) {
				continue
			}
			matches = append(matches, Match{Day: day, Record: rec})
			if limit > 0 && len(matches) >= limit {
				return matches, nil
			}
		}
	}
	return matches, nil
}

func (f Filter) matches(rec Record) bool {
	// Text search (case-insensitive substring match)
	if f.Text != "" && !strings.Contains(strings.ToLower(rec.Comment), strings.ToLower(f.Text)) {
		return false
	}
	if f.Marker != 0 && rec.Marker != f.Marker {
		return false
	}
	if f.Since != nil && rec.Timestamp.Before(*f.Since) {
		return false
	}
	if f.Until != nil && rec.Timestamp.After(*f.Until) {
		return false
	}
	return true
}
