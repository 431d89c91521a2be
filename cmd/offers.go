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

var offersCmd = &cobra.Command{
	Use:   "offers [identifier]",
	Short: "Get current offers for a product, sorted by price",
	Args:  cobra.ExactArgs(1),
	RunE:  runOffers,
}

func init() {
	offersCmd.Flags().String("retailer", "", "Limit offers to one retailer domain")
	offersCmd.Flags().String("format", "text", "Output format: text, json")
	rootCmd.AddCommand(offersCmd)
}

func runOffers(cmd *cobra.Command, args []string) error {
	gw, err := buildGateway()
	if err != nil {
		return err
	}

	identifier := args[0]
	if err := validate.Identifier(identifier); err != nil {
		return err
	}
	retailer, _ := cmd.Flags().GetString("retailer")
	format, _ := cmd.Flags().GetString("format")

	params := map[string]any{"identifier": identifier}
	if retailer != "" {
		params["retailer"] = retailer
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching offers for %s...", identifier))
	env, err := gw.Do(context.Background(), "GET", gateway.PathOffers, params)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("offers failed: %w", err)
	}

	offers, err := models.DecodeOffers(env.Data)
	if err != nil {
		return err
	}

	text := report.Offers(offers)
	return emit(format, text, offers, env.Meta)
}
