// ABOUTME: MCP subcommand for running the worklog MCP server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"github.com/spf13/cobra"

	"github.com/harper/worklog/internal/mcp"
)

func (a *app) mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the worklog MCP server",
		Long:  `Start the Model Context Protocol server for AI assistants to log work over stdio.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mcp.NewServer(a.cfg.Directory, a.logger)
			return server.Run(cmd.Context())
		},
	}
}
