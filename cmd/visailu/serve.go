package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	visailumcp "github.com/gorewood/visailu/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run visailu as a Model Context Protocol (MCP) server over stdio.

This exposes the model checks and quiz publishing as MCP tools that any
MCP-capable agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "visailu": {
        "command": "visailu",
        "args": ["serve"]
      }
    }
  }

Available tools: verify, validate, publish`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			server := visailumcp.NewServer(buildVersion(), visailumcp.Options{
				BuildDir: settings.BuildDir,
				Shape:    shapeOf(settings),
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
