// ABOUTME: MCP prompt definitions for worklog
// ABOUTME: Provides static context to AI assistants about worklog capabilities
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "worklog-getting-started",
		Description: "Introduction to worklog and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		content := `Worklog keeps a plain-text log of the user's working day, one file per day.

Each comment is recorded as:
- a start, when nothing is running (the first comment of the day or the first after a finish)
- a continue, while a session is running
- a finish, when the user says they are done (call log_work with finish=true)

Finish records include the total time of the session. Use work_status to see how long
the user has been working, or how long since they stopped.

Only remove records when the user explicitly asks to undo one.`

		result := &mcp.GetPromptResult{
			Description: "Getting started with worklog",
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: content,
					},
				},
			},
		}

		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
