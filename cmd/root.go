package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopsight/shopsight-mcp/config"
	"github.com/shopsight/shopsight-mcp/internal/gateway"
)

// clientSignature identifies this client to the ShopSight Data API.
const clientSignature = "shopsight-mcp/1.0.0"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "shopsight",
	Short: "ShopSight MCP - product data & pricing CLI and MCP server",
	Long:  "A CLI tool and MCP server exposing the ShopSight product-data and pricing API as assistant tool calls.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("base-url", "", "Override the upstream API base URL")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("base-url"); v != "" {
		cfg.BaseURL = v
	}
}

// buildGateway validates the credential and constructs the upstream client.
// A bad credential is fatal before anything touches the network.
func buildGateway() (*gateway.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return gateway.New(cfg.BaseURL, cfg.APIToken, clientSignature, nil), nil
}
