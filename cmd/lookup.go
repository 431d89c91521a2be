package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopsight/shopsight-mcp/internal/gateway"
	"github.com/shopsight/shopsight-mcp/internal/models"
	"github.com/shopsight/shopsight-mcp/internal/report"
	"github.com/shopsight/shopsight-mcp/internal/ui"
	"github.com/shopsight/shopsight-mcp/internal/validate"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [identifier...]",
	Short: "Look up product details by barcode, ASIN, URL, model number, or ShopSight ID",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().String("format", "text", "Output format: text, json")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	gw, err := buildGateway()
	if err != nil {
		return err
	}

	joined, err := validate.Identifiers(args)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Looking up %d identifier(s)...", len(args)))
	env, err := gw.Do(context.Background(), "GET", gateway.PathProducts, map[string]any{"identifier": joined})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	products, err := models.DecodeProducts(env.Data)
	if err != nil {
		return err
	}

	return emit(format, report.Products(products), products, env.Meta)
}
