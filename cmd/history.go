package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/shopsight/shopsight-mcp/internal/gateway"
	"github.com/shopsight/shopsight-mcp/internal/models"
	"github.com/shopsight/shopsight-mcp/internal/report"
	"github.com/shopsight/shopsight-mcp/internal/ui"
	"github.com/shopsight/shopsight-mcp/internal/validate"
)

// historyFanout caps concurrent upstream calls when several retailers are
// requested at once.
const historyFanout = 4

var historyCmd = &cobra.Command{
	Use:   "history [identifier]",
	Short: "Get price history for a product within a date window",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().String("start", "", "Window start, YYYY-MM-DD (required)")
	historyCmd.Flags().String("end", "", "Window end, YYYY-MM-DD (required)")
	historyCmd.Flags().StringArray("retailer", nil, "Retailer domain filter (repeatable)")
	historyCmd.Flags().String("format", "text", "Output format: text, json")
	historyCmd.MarkFlagRequired("start")
	historyCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(historyCmd)
}

type historyResult struct {
	Retailer string                `json:"retailer,omitempty"`
	Points   []models.HistoryPoint `json:"points"`
	Meta     *models.Meta          `json:"meta"`
}

func runHistory(cmd *cobra.Command, args []string) error {
	gw, err := buildGateway()
	if err != nil {
		return err
	}

	identifier := args[0]
	if err := validate.Identifier(identifier); err != nil {
		return err
	}
	start, _ := cmd.Flags().GetString("start")
	if err := validate.Date("start", start); err != nil {
		return err
	}
	end, _ := cmd.Flags().GetString("end")
	if err := validate.Date("end", end); err != nil {
		return err
	}
	retailers, _ := cmd.Flags().GetStringArray("retailer")
	format, _ := cmd.Flags().GetString("format")

	fetch := func(ctx context.Context, retailer string) (*historyResult, error) {
		params := map[string]any{
			"identifier": identifier,
			"start_date": start,
			"end_date":   end,
		}
		if retailer != "" {
			params["retailer"] = retailer
		}
		env, err := gw.Do(ctx, "GET", gateway.PathHistory, params)
		if err != nil {
			return nil, err
		}
		points, err := models.DecodeHistory(env.Data)
		if err != nil {
			return nil, err
		}
		return &historyResult{Retailer: retailer, Points: points, Meta: env.Meta}, nil
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching price history for %s...", identifier))

	var results []*historyResult
	if len(retailers) <= 1 {
		retailer := ""
		if len(retailers) == 1 {
			retailer = retailers[0]
		}
		r, err := fetch(context.Background(), retailer)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("history failed: %w", err)
		}
		results = []*historyResult{r}
	} else {
		// One upstream round trip per retailer, fanned out with a bounded group.
		results = make([]*historyResult, len(retailers))
		g, ctx := errgroup.WithContext(context.Background())
		g.SetLimit(historyFanout)
		for i, retailer := range retailers {
			g.Go(func() error {
				r, err := fetch(ctx, retailer)
				if err != nil {
					return fmt.Errorf("history for %s: %w", retailer, err)
				}
				results[i] = r
				spin.Update(fmt.Sprintf("Fetched history from %s", retailer))
				return nil
			})
		}
		err := g.Wait()
		spin.Stop()
		if err != nil {
			return err
		}
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	sections := make([]string, 0, len(results))
	for _, r := range results {
		sections = append(sections, report.WithCredits(report.History(start, end, r.Retailer, r.Points), r.Meta))
	}
	fmt.Println(strings.Join(sections, "\n\n"))
	return nil
}
