// ABOUTME: Tests for the fixed-width record format
// ABOUTME: Validates parsing, serialization and comment normalization
package worklog

import (
	"testing"
	"time"
)

func TestRecordString(t *testing.T) {
	rec := Record{
		Timestamp: time.Date(2026, 10, 16, 9, 5, 7, 999, time.UTC),
		Marker:    Start,
		Comment:   "Fixed bug",
	}
	got := rec.String()
	want := "2026-10-16 09:05:07\tS\tFixed bug"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got[markerOffset] != 'S' {
		t.Errorf("marker not at offset %d: %q", markerOffset, got)
	}
}

func TestParseRecord(t *testing.T) {
	t.Run("parses a finish line", func(t *testing.T) {
		rec, ok := ParseRecord("2026-10-16 17:30:00\tF\tShipped. Total of 1:00:00.\n", time.UTC)
		if !ok {
			t.Fatal("expected line to parse")
		}
		if rec.Marker != Finish {
			t.Errorf("got marker %q, want F", rec.Marker)
		}
		if rec.Comment != "Shipped. Total of 1:00:00." {
			t.Errorf("got comment %q", rec.Comment)
		}
		if !rec.Timestamp.Equal(time.Date(2026, 10, 16, 17, 30, 0, 0, time.UTC)) {
			t.Errorf("got timestamp %v", rec.Timestamp)
		}
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		for _, line := range []string{
			"",
			"garbage",
			"2026-10-16 17:30:00\tX\tcomment",
			"2026-10-16 17:30:00 S comment",
			"not-a-date-at-all!!\tS\tcomment",
		} {
			if _, ok := ParseRecord(line, time.UTC); ok {
				t.Errorf("expected %q to be rejected", line)
			}
		}
	})
}

func TestParseMarker(t *testing.T) {
	cases := map[string]Marker{
		"S":        Start,
		"start":    Start,
		"|":        Continue,
		"continue": Continue,
		"c":        Continue,
		"F":        Finish,
		"finish":   Finish,
	}
	for in, want := range cases {
		got, ok := ParseMarker(in)
		if !ok || got != want {
			t.Errorf("ParseMarker(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseMarker("x"); ok {
		t.Error("expected unknown marker to be rejected")
	}
}

func TestNormalizeComment(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"Fixed", "bug"}, "Fixed bug"},
		{[]string{"tab\tseparated"}, "tab separated"},
		{[]string{"multi\nline"}, "multi line"},
		{[]string{"  padded  "}, "padded"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := NormalizeComment(tc.args); got != tc.want {
			t.Errorf("NormalizeComment(%q) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestFinishComment(t *testing.T) {
	const worktime = "Total of 1:00:00."
	cases := map[string]string{
		"done":  "done. Total of 1:00:00.",
		"done.": "done. Total of 1:00:00.",
		"done!": "done! Total of 1:00:00.",
		"done?": "done? Total of 1:00:00.",
		"done,": "done, Total of 1:00:00.",
		"done:": "done: Total of 1:00:00.",
		"done;": "done; Total of 1:00:00.",
		"done)": "done). Total of 1:00:00.",
		"":      ". Total of 1:00:00.",
	}
	for comment, want := range cases {
		if got := finishComment(comment, worktime); got != want {
			t.Errorf("finishComment(%q) = %q, want %q", comment, got, want)
		}
	}
}
