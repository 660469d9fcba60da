package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubedash/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can query your
channel analytics.

The account signs in before the server starts. Consent needs an
interactive terminal, so stdio mode only works once the browser step can
be completed; HTTP mode started from a terminal always can.

Examples:
  # Stdio mode (default)
  tubedash mcp serve --email you@example.com

  # HTTP mode (for MCP Inspector, remote access)
  tubedash mcp serve --port 8080`,
	RunE: runMCPServe,
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
		Analytics:    analyticsService,
		Reports:      reportService,
		SavedReports: savedReportService,
	}

	server, err := mcp.NewServer(ports, settings.ReportDays)
	if err != nil {
		return err
	}

	if err := ensureSignedIn(cmd.Context()); err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
