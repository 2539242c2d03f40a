// ABOUTME: MCP resource implementations for worklog
// ABOUTME: Exposes today's log as readable context
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/worklog/internal/config"
)

const (
	todayURI   = "worklog://today"
	projectURI = "worklog://project"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	today := &mcp.Resource{
		URI:         todayURI,
		Name:        "Today",
		Description: "Today's work log followed by the current working or idle time",
		MIMEType:    "text/plain",
	}
	s.mcpServer.AddResource(today, s.handleToday)

	project := &mcp.Resource{
		URI:         projectURI,
		Name:        "Project",
		Description: "The .worklog project configuration that mirrors records from the current directory",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(project, s.handleProject)
}

// handleToday implements the today resource.
func (s *Server) handleToday(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	res, err := s.engine().Dump()
	if err != nil {
		return nil, fmt.Errorf("failed to dump log: %w", err)
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      todayURI,
				MIMEType: "text/plain",
				Text:     res.Output,
			},
		},
	}
	return result, nil
}

// projectContext is the JSON body of the project resource.
type projectContext struct {
	HasProjectConfig bool                  `json:"has_project_config"`
	ProjectRoot      string                `json:"project_root,omitempty"`
	LogDir           string                `json:"log_dir,omitempty"`
	Config           *config.ProjectConfig `json:"config,omitempty"`
	Message          string                `json:"message"`
}

// handleProject implements the project resource.
func (s *Server) handleProject(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	projectRoot, err := config.FindProjectRoot(cwd)
	if err != nil {
		return nil, err
	}

	var pc projectContext
	if projectRoot == "" {
		pc.Message = "No .worklog project configuration found in current directory tree"
	} else {
		pc.HasProjectConfig = true
		pc.ProjectRoot = projectRoot

		cfg, err := config.LoadProjectConfig(filepath.Join(projectRoot, config.ProjectFile))
		if err != nil {
			pc.Message = fmt.Sprintf("Project configuration could not be read: %v", err)
		} else {
			pc.Config = cfg
			pc.LogDir = filepath.Join(projectRoot, cfg.LogDir)
			if cfg.LocalLogging {
				pc.Message = "Records are mirrored into the project log"
			} else {
				pc.Message = "Project found but local_logging is disabled"
			}
		}
	}

	data, err := json.MarshalIndent(pc, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      projectURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
