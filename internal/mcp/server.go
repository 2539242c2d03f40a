// ABOUTME: MCP server implementation for worklog
// ABOUTME: Provides tools and resources for AI assistants to log and inspect work time
package mcp

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/worklog/internal/worklog"
)

// Server wraps the MCP server with worklog-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	root      string
	logger    *log.Logger
	now       func() time.Time
}

// NewServer creates a new worklog MCP server for the logs under root.
func NewServer(root string, logger *log.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "worklog",
		Version: "0.1.0",
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		root:      root,
		logger:    logger,
		now:       time.Now,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// engine returns a fresh engine so every call sees the current day and time.
func (s *Server) engine() *worklog.Engine {
	return worklog.New(worklog.Options{
		Root:   s.root,
		Now:    s.now,
		Logger: s.logger,
	})
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	if s.logger != nil {
		s.logger.Info("mcp server listening on stdio", "root", s.root)
	}
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
