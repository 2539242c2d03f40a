// ABOUTME: Tests for MCP tools
// ABOUTME: Calls tool handlers directly against a temp log root
package mcp

import (
	"context"
	"testing"
	"time"
)

func newTestServer(t *testing.T, now *time.Time) *Server {
	t.Helper()
	s := NewServer(t.TempDir(), nil)
	s.now = func() time.Time { return *now }
	return s
}

func TestLogWorkTool(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	server := newTestServer(t, &now)
	ctx := context.Background()

	result, output, err := server.handleLogWork(ctx, nil, LogWorkInput{Comment: "Fixed bug"})
	if err != nil {
		t.Fatalf("handleLogWork failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if output.Kind != "start" {
		t.Errorf("got kind %s, want start", output.Kind)
	}
	if output.Record != "2026-10-16 09:00:00\tS\tFixed bug" {
		t.Errorf("got record %q", output.Record)
	}

	now = now.Add(time.Hour)
	_, output, err = server.handleLogWork(ctx, nil, LogWorkInput{Comment: "Shipped.", Finish: true})
	if err != nil {
		t.Fatalf("handleLogWork failed: %v", err)
	}
	if output.Kind != "finish" {
		t.Errorf("got kind %s, want finish", output.Kind)
	}
	if output.Worktime != "Total of 1:00:00." {
		t.Errorf("got worktime %q", output.Worktime)
	}
}

func TestLogWorkRequiresComment(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	server := newTestServer(t, &now)

	if _, _, err := server.handleLogWork(context.Background(), nil, LogWorkInput{}); err == nil {
		t.Fatal("expected error for empty comment, got nil")
	}
}

func TestStatusDumpAndRemoveTools(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	server := newTestServer(t, &now)
	ctx := context.Background()

	_, status, err := server.handleStatus(ctx, nil, EmptyInput{})
	if err != nil {
		t.Fatalf("handleStatus failed: %v", err)
	}
	if status.Logged {
		t.Error("expected nothing logged yet")
	}

	for _, c := range []string{"one", "two"} {
		if _, _, err := server.handleLogWork(ctx, nil, LogWorkInput{Comment: c}); err != nil {
			t.Fatalf("handleLogWork failed: %v", err)
		}
	}

	now = now.Add(15 * time.Minute)
	_, status, err = server.handleStatus(ctx, nil, EmptyInput{})
	if err != nil {
		t.Fatalf("handleStatus failed: %v", err)
	}
	if !status.Logged || !status.Working {
		t.Errorf("expected an open session, got %+v", status)
	}
	if status.Worktime != "Total of 0:15:00." {
		t.Errorf("got worktime %q", status.Worktime)
	}

	_, dump, err := server.handleDump(ctx, nil, EmptyInput{})
	if err != nil {
		t.Fatalf("handleDump failed: %v", err)
	}
	if len(dump.Lines) != 2 {
		t.Errorf("got %d lines, want 2", len(dump.Lines))
	}

	_, removed, err := server.handleRemoveLast(ctx, nil, EmptyInput{})
	if err != nil {
		t.Fatalf("handleRemoveLast failed: %v", err)
	}
	if removed.Message != "Removed last record from the log." {
		t.Errorf("got message %q", removed.Message)
	}
}

func TestTodayResource(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	server := newTestServer(t, &now)

	result, err := server.handleToday(context.Background(), nil)
	if err != nil {
		t.Fatalf("handleToday failed: %v", err)
	}
	if len(result.Contents) != 1 || result.Contents[0].Text != "No work logged today.\n" {
		t.Errorf("unexpected contents: %+v", result.Contents)
	}
}
