package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/shopsight/shopsight-mcp/internal/gateway"
)

// Serve starts the MCP stdio server with all tools registered.
func Serve(gw *gateway.Client) error {
	s := server.NewMCPServer(
		"shopsight-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, gw)

	return server.ServeStdio(s)
}
