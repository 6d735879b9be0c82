package cli

import (
	mcpadapter "github.com/nbstyle/nbstyle/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the nbstyle MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var magicPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start nbstyle MCP server (stdio)",
		Long:  "Start the nbstyle MCP server using stdio transport. This lets AI coding assistants style-check notebooks and inspect their code cells.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewNBStyleMCPServer(magicPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&magicPath, "magic", "", "Path to the marker-cell config")

	return cmd
}
