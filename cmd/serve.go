package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	mcpserver "github.com/shopsight/shopsight-mcp/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	gw, err := buildGateway()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting ShopSight MCP server on stdio...")

	if err := mcpserver.Serve(gw); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
	return nil
}
