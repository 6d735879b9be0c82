package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewNBStyleMCPServer creates a new MCP server with the nbstyle tools
// registered. magicPath optionally overrides the marker-cell config location.
func NewNBStyleMCPServer(magicPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"nbstyle",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, magicPath)

	return s
}
