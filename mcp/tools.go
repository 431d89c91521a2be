package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shopsight/shopsight-mcp/internal/gateway"
	"github.com/shopsight/shopsight-mcp/internal/models"
	"github.com/shopsight/shopsight-mcp/internal/report"
	"github.com/shopsight/shopsight-mcp/internal/validate"
)

// handlers binds the operation catalog to one gateway client.
type handlers struct {
	gw *gateway.Client
}

func registerTools(s *server.MCPServer, gw *gateway.Client) {
	h := &handlers{gw: gw}

	// lookup_product
	lookupTool := mcp.NewTool("lookup_product",
		mcp.WithDescription("Look up product details by identifier: barcode (UPC/EAN), ASIN, product URL, model number, or ShopSight ID. Accepts a comma-separated list for batch lookup."),
		mcp.WithString("identifiers",
			mcp.Required(),
			mcp.Description("One or more product identifiers, comma-separated"),
		),
	)
	s.AddTool(lookupTool, h.handleLookup)

	// get_offers
	offersTool := mcp.NewTool("get_offers",
		mcp.WithDescription("Get current offers for a product across all tracked retailers, sorted by price"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Product identifier: barcode, ASIN, URL, model number, or ShopSight ID"),
		),
	)
	s.AddTool(offersTool, h.handleOffers)

	// get_retailer_offers
	retailerOffersTool := mcp.NewTool("get_retailer_offers",
		mcp.WithDescription("Get current offers for a product from a single retailer"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Product identifier"),
		),
		mcp.WithString("retailer",
			mcp.Required(),
			mcp.Description("Retailer domain, e.g. amazon.com"),
		),
	)
	s.AddTool(retailerOffersTool, h.handleRetailerOffers)

	// get_price_history
	historyTool := mcp.NewTool("get_price_history",
		mcp.WithDescription("Get price and availability history for a product within a date window"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Product identifier"),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Window start, YYYY-MM-DD (inclusive)"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("Window end, YYYY-MM-DD (inclusive)"),
		),
		mcp.WithString("retailer",
			mcp.Description("Optional retailer domain filter"),
		),
	)
	s.AddTool(historyTool, h.handleHistory)

	// schedule_monitoring
	scheduleTool := mcp.NewTool("schedule_monitoring",
		mcp.WithDescription("Schedule a product for automatic price monitoring"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Product identifier"),
		),
		mcp.WithString("schedule",
			mcp.Required(),
			mcp.Description("Refresh frequency: hourly, daily, or weekly"),
		),
		mcp.WithString("retailer",
			mcp.Description("Optional retailer domain to limit monitoring to"),
		),
	)
	s.AddTool(scheduleTool, h.handleSchedule)

	// unschedule_monitoring
	unscheduleTool := mcp.NewTool("unschedule_monitoring",
		mcp.WithDescription("Remove a product from scheduled price monitoring"),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Product identifier"),
		),
	)
	s.AddTool(unscheduleTool, h.handleUnschedule)

	// list_scheduled
	listScheduledTool := mcp.NewTool("list_scheduled",
		mcp.WithDescription("List all products currently scheduled for monitoring, grouped by frequency"),
	)
	s.AddTool(listScheduledTool, h.handleListScheduled)

	// get_usage
	usageTool := mcp.NewTool("get_usage",
		mcp.WithDescription("Get API credit usage for the current billing period"),
	)
	s.AddTool(usageTool, h.handleUsage)
}

// run is the pipeline every operation shares: one upstream round trip, a
// renderer over the envelope, then the credit footer. Failures of any kind
// come back as tool error results; nothing escapes the dispatcher boundary.
func (h *handlers) run(ctx context.Context, method, path string, params map[string]any, render func(*gateway.Envelope) (string, error)) (*mcp.CallToolResult, error) {
	env, err := h.gw.Do(ctx, method, path, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := render(env)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(report.WithCredits(body, env.Meta)), nil
}

func (h *handlers) handleLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("identifiers", "")
	ids := strings.Split(raw, ",")
	for i := range ids {
		ids[i] = strings.TrimSpace(ids[i])
	}
	joined, err := validate.Identifiers(ids)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.run(ctx, "GET", gateway.PathProducts, map[string]any{"identifier": joined},
		func(env *gateway.Envelope) (string, error) {
			products, err := models.DecodeProducts(env.Data)
			if err != nil {
				return "", err
			}
			return report.Products(products), nil
		})
}

func (h *handlers) handleOffers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := request.GetString("identifier", "")
	if err := validate.Identifier(identifier); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.run(ctx, "GET", gateway.PathOffers, map[string]any{"identifier": identifier}, renderOffers)
}

func (h *handlers) handleRetailerOffers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := request.GetString("identifier", "")
	if err := validate.Identifier(identifier); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	retailer := request.GetString("retailer", "")
	if err := validate.Retailer(retailer); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := map[string]any{"identifier": identifier, "retailer": retailer}
	return h.run(ctx, "GET", gateway.PathOffers, params, renderOffers)
}

func (h *handlers) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := request.GetString("identifier", "")
	if err := validate.Identifier(identifier); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	start := request.GetString("start_date", "")
	if err := validate.Date("start_date", start); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end := request.GetString("end_date", "")
	if err := validate.Date("end_date", end); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	retailer := request.GetString("retailer", "")

	params := map[string]any{
		"identifier": identifier,
		"start_date": start,
		"end_date":   end,
	}
	if retailer != "" {
		params["retailer"] = retailer
	}

	return h.run(ctx, "GET", gateway.PathHistory, params,
		func(env *gateway.Envelope) (string, error) {
			points, err := models.DecodeHistory(env.Data)
			if err != nil {
				return "", err
			}
			return report.History(start, end, retailer, points), nil
		})
}

func (h *handlers) handleSchedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := request.GetString("identifier", "")
	if err := validate.Identifier(identifier); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	schedule := request.GetString("schedule", "")
	if err := validate.Frequency(schedule); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	retailer := request.GetString("retailer", "")

	params := map[string]any{"identifier": identifier, "schedule": schedule}
	if retailer != "" {
		params["retailer"] = retailer
	}

	return h.run(ctx, "PUT", gateway.PathScheduled, params,
		func(env *gateway.Envelope) (string, error) {
			return "Scheduled " + identifier + " for " + schedule + " price monitoring.", nil
		})
}

func (h *handlers) handleUnschedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := request.GetString("identifier", "")
	if err := validate.Identifier(identifier); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.run(ctx, "DELETE", gateway.PathScheduled, map[string]any{"identifier": identifier},
		func(env *gateway.Envelope) (string, error) {
			return "Removed " + identifier + " from scheduled price monitoring.", nil
		})
}

func (h *handlers) handleListScheduled(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, "GET", gateway.PathScheduled, nil,
		func(env *gateway.Envelope) (string, error) {
			entries, err := models.DecodeScheduled(env.Data)
			if err != nil {
				return "", err
			}
			return report.Scheduled(entries), nil
		})
}

func (h *handlers) handleUsage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, "GET", gateway.PathUsage, nil,
		func(env *gateway.Envelope) (string, error) {
			period, err := models.DecodeUsage(env.Data)
			if err != nil {
				return "", err
			}
			return report.Usage(period), nil
		})
}

func renderOffers(env *gateway.Envelope) (string, error) {
	offers, err := models.DecodeOffers(env.Data)
	if err != nil {
		return "", err
	}
	return report.Offers(offers), nil
}
