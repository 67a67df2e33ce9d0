package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/evsearch/internal/adapters/driving/mcp"
	"github.com/custodia-labs/evsearch/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC. Nothing
is prompted: a missing es.exe is downloaded only when cli.auto_install
is true, and failures are returned as tool errors.

Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  evsearch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  evsearch mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "evsearch": {
        "command": "C:\\Tools\\evsearch.exe",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Annotations: map[string]string{annotationInteractive: "false"},
	RunE:        runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Search:    searchService,
		Settings:  settingsService,
		Inspector: inspector,
	}

	server, err := mcp.NewServer(ports, mcp.WithVersion(version))
	if err != nil {
		return err
	}

	if watchConfig != nil {
		if err := watchConfig(cmd.Context()); err != nil {
			logger.Warn("config reload disabled: %v", err)
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
