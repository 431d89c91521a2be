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

var scheduleCmd = &cobra.Command{
	Use:   "schedule [identifier]",
	Short: "Schedule a product for automatic price monitoring",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchedule,
}

var unscheduleCmd = &cobra.Command{
	Use:   "unschedule [identifier]",
	Short: "Remove a product from scheduled monitoring",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnschedule,
}

var scheduledCmd = &cobra.Command{
	Use:   "scheduled",
	Short: "List products under scheduled monitoring, grouped by frequency",
	RunE:  runScheduled,
}

func init() {
	scheduleCmd.Flags().String("every", "daily", "Refresh frequency: hourly, daily, weekly")
	scheduleCmd.Flags().String("retailer", "", "Limit monitoring to one retailer domain")
	scheduledCmd.Flags().String("format", "text", "Output format: text, json")
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(unscheduleCmd)
	rootCmd.AddCommand(scheduledCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	gw, err := buildGateway()
	if err != nil {
		return err
	}

	identifier := args[0]
	if err := validate.Identifier(identifier); err != nil {
		return err
	}
	frequency, _ := cmd.Flags().GetString("every")
	if err := validate.Frequency(frequency); err != nil {
		return err
	}
	retailer, _ := cmd.Flags().GetString("retailer")

	params := map[string]any{"identifier": identifier, "schedule": frequency}
	if retailer != "" {
		params["retailer"] = retailer
	}

	env, err := gw.Do(context.Background(), "PUT", gateway.PathScheduled, params)
	if err != nil {
		return fmt.Errorf("schedule failed: %w", err)
	}

	fmt.Println(report.WithCredits(
		fmt.Sprintf("Scheduled %s for %s price monitoring.", identifier, frequency), env.Meta))
	return nil
}

func runUnschedule(cmd *cobra.Command, args []string) error {
	gw, err := buildGateway()
	if err != nil {
		return err
	}

	identifier := args[0]
	if err := validate.Identifier(identifier); err != nil {
		return err
	}

	env, err := gw.Do(context.Background(), "DELETE", gateway.PathScheduled, map[string]any{"identifier": identifier})
	if err != nil {
		return fmt.Errorf("unschedule failed: %w", err)
	}

	fmt.Println(report.WithCredits(
		fmt.Sprintf("Removed %s from scheduled price monitoring.", identifier), env.Meta))
	return nil
}

func runScheduled(cmd *cobra.Command, args []string) error {
	gw, err := buildGateway()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner()
	spin.Start("Fetching scheduled products...")
	env, err := gw.Do(context.Background(), "GET", gateway.PathScheduled, nil)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("scheduled listing failed: %w", err)
	}

	entries, err := models.DecodeScheduled(env.Data)
	if err != nil {
		return err
	}

	return emit(format, report.Scheduled(entries), entries, env.Meta)
}
