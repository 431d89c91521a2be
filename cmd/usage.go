package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopsight/shopsight-mcp/internal/gateway"
	"github.com/shopsight/shopsight-mcp/internal/models"
	"github.com/shopsight/shopsight-mcp/internal/report"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show API credit usage for the current billing period",
	RunE:  runUsage,
}

func init() {
	usageCmd.Flags().String("format", "text", "Output format: text, json")
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, args []string) error {
	gw, err := buildGateway()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	env, err := gw.Do(context.Background(), "GET", gateway.PathUsage, nil)
	if err != nil {
		return fmt.Errorf("usage failed: %w", err)
	}

	period, err := models.DecodeUsage(env.Data)
	if err != nil {
		return err
	}

	return emit(format, report.Usage(period), period, env.Meta)
}
