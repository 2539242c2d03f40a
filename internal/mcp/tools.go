// ABOUTME: MCP tool implementations for worklog
// ABOUTME: Exposes comment, status, dump and remove-last as tools
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/worklog/internal/worklog"
)

// LogWorkInput defines the input for the log_work tool.
type LogWorkInput struct {
	Comment string `json:"comment" jsonschema:"What the user is working on or has finished"`
	Finish  bool   `json:"finish,omitempty" jsonschema:"Set to record the end of the current work session"`
}

// LogWorkOutput defines the output for the log_work tool.
type LogWorkOutput struct {
	Kind      string `json:"kind" jsonschema:"start, continue or finish"`
	Record    string `json:"record" jsonschema:"The raw line appended to today's log"`
	Worktime  string `json:"worktime" jsonschema:"Elapsed time since the previous start or finish"`
	Timestamp string `json:"timestamp" jsonschema:"When the record was written"`
}

// EmptyInput is used by tools that take no arguments.
type EmptyInput struct{}

// StatusOutput defines the output for the work_status tool.
type StatusOutput struct {
	Logged   bool   `json:"logged" jsonschema:"Whether anything was logged today"`
	Last     string `json:"last,omitempty" jsonschema:"The last raw record of today's log"`
	Worktime string `json:"worktime,omitempty" jsonschema:"Total working time or time since the last finish"`
	Working  bool   `json:"working" jsonschema:"True while a session is open"`
}

// DumpOutput defines the output for the dump_log tool.
type DumpOutput struct {
	Lines    []string `json:"lines" jsonschema:"Today's raw records in order"`
	Worktime string   `json:"worktime,omitempty" jsonschema:"Elapsed-time phrase for the current breakpoint"`
}

// RemoveOutput defines the output for the remove_last_record tool.
type RemoveOutput struct {
	Message string `json:"message" jsonschema:"What was removed"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_work",
		Description: "Append a comment to today's work log. The first comment starts a session, later ones continue it, and finish=true stops it.",
	}, s.handleLogWork)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "work_status",
		Description: "Show the last record of today's work log and the time worked or idle since the last start or finish.",
	}, s.handleStatus)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "dump_log",
		Description: "Return every record of today's work log.",
	}, s.handleDump)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_last_record",
		Description: "Remove the most recent record from today's work log. Only use when the user explicitly asks to undo a record.",
	}, s.handleRemoveLast)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: strings.TrimSuffix(text, "\n")},
		},
	}
}

// handleLogWork implements the log_work tool.
func (s *Server) handleLogWork(ctx context.Context, req *mcp.CallToolRequest, input LogWorkInput) (*mcp.CallToolResult, LogWorkOutput, error) {
	res, err := s.engine().Comment(input.Finish, []string{input.Comment})
	if err != nil {
		return nil, LogWorkOutput{}, fmt.Errorf("failed to log work: %w", err)
	}
	if res.Record == nil {
		return nil, LogWorkOutput{}, errors.New("comment is required")
	}

	output := LogWorkOutput{
		Kind:      res.Record.Marker.String(),
		Record:    res.Record.String(),
		Worktime:  res.Worktime,
		Timestamp: res.Record.Timestamp.Format(worklog.TimestampLayout),
	}
	return textResult(res.Output), output, nil
}

// handleStatus implements the work_status tool.
func (s *Server) handleStatus(ctx context.Context, req *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, StatusOutput, error) {
	e := s.engine()
	res, err := e.Status()
	if err != nil {
		return nil, StatusOutput{}, fmt.Errorf("failed to read status: %w", err)
	}
	if res.Empty {
		return textResult(res.Output), StatusOutput{}, nil
	}

	bp, err := e.Breakpoint()
	if err != nil {
		return nil, StatusOutput{}, err
	}
	output := StatusOutput{
		Logged:   true,
		Last:     bp.LastLine,
		Worktime: res.Worktime,
		Working:  bp.Timestamp != "" && !bp.IsFinish,
	}
	return textResult(res.Output), output, nil
}

// handleDump implements the dump_log tool.
func (s *Server) handleDump(ctx context.Context, req *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, DumpOutput, error) {
	e := s.engine()
	res, err := e.Dump()
	if err != nil {
		return nil, DumpOutput{}, fmt.Errorf("failed to dump log: %w", err)
	}
	if res.Empty {
		return textResult(res.Output), DumpOutput{Lines: []string{}}, nil
	}

	lines, err := e.Lines()
	if err != nil {
		return nil, DumpOutput{}, err
	}
	return textResult(res.Output), DumpOutput{Lines: lines, Worktime: res.Worktime}, nil
}

// handleRemoveLast implements the remove_last_record tool.
func (s *Server) handleRemoveLast(ctx context.Context, req *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, RemoveOutput, error) {
	res, err := s.engine().RemoveLast()
	if err != nil {
		return nil, RemoveOutput{}, fmt.Errorf("failed to remove record: %w", err)
	}
	msg := strings.TrimSuffix(res.Output, "\n")
	return textResult(msg), RemoveOutput{Message: msg}, nil
}
