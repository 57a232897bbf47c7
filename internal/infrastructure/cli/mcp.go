package cli

import (
	"fmt"
	"os"

	inframcp "github.com/aufield/sitesheet/internal/infrastructure/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the inspection sheet to MCP clients over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("SITESHEET_SKIP_MCP_START") == "true" {
			return nil
		}
		root, err := workspaceRoot()
		if err != nil {
			return err
		}
		server, err := inframcp.NewServer(root, logger)
		if err != nil {
			return MapError(fmt.Errorf("failed to build MCP server: %w", err))
		}
		defer server.Close()

		return server.ServeStdio(cmd.Context())
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	RootCmd.AddCommand(mcpCmd)
}
