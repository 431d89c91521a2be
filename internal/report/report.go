// Package report renders normalized upstream records as the textual reports
// returned at the tool-call boundary. Missing optional fields always render
// as an explicit "not available" marker so a consumer can tell partial data
// from complete data.
package report

import (
	"fmt"
	"strings"

	"github.com/shopsight/shopsight-mcp/internal/models"
)

const notAvailable = "not available"

// Products renders a lookup result. Upstream ordering (relevance) is kept and
// entries are numbered from 1 so batch callers can correlate results.
func Products(products []models.Product) string {
	if len(products) == 0 {
		return "No products matched the given identifier(s)."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d product(s):\n", len(products))
	for i, p := range products {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, orNA(p.Title))
		fmt.Fprintf(&b, "   Brand: %s | Category: %s\n", orNA(p.Brand), orNA(p.Category))
		fmt.Fprintf(&b, "   Color: %s | Model: %s | MPN: %s\n", orNA(p.Color), orNA(p.Model), orNA(p.MPN))
		fmt.Fprintf(&b, "   Barcode: %s | ASIN: %s | ShopSight ID: %s\n", orNA(p.Barcode), orNA(p.ASIN), orNA(p.ShopSightID))
		fmt.Fprintf(&b, "   Images: %d\n", p.ImageCount)
	}
	return b.String()
}

// Offers renders an offer set, sorted ascending by price with unpriced
// offers last.
func Offers(offers []models.Offer) string {
	if len(offers) == 0 {
		return "No offers found for this product."
	}

	models.SortOffers(offers)

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d offer(s), best price first:\n", len(offers))
	for i, o := range offers {
		fmt.Fprintf(&b, "\n%d. %s - %s\n", i+1, orNA(o.Retailer), formatPrice(o.Price))
		fmt.Fprintf(&b, "   Availability: %s | Condition: %s | Seller: %s\n",
			orNA(o.Availability), orNA(o.Condition), orNA(o.Seller))
		if o.URL != "" {
			fmt.Fprintf(&b, "   %s\n", o.URL)
		}
	}
	return b.String()
}

// History renders a price-history window. Point order is upstream's
// (assumed chronological) and is preserved as-is.
func History(start, end, retailer string, points []models.HistoryPoint) string {
	scope := "all retailers"
	if retailer != "" {
		scope = retailer
	}
	if len(points) == 0 {
		return fmt.Sprintf("No price history for %s between %s and %s.", scope, start, end)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Price history for %s (%s to %s), %d point(s):\n", scope, start, end, len(points))
	for _, p := range points {
		fmt.Fprintf(&b, "  %s  %s  %s\n", p.Timestamp, formatPrice(p.Price), orNA(p.Availability))
	}
	return b.String()
}

// Scheduled renders monitored products grouped by frequency. Groups and the
// entries inside them keep first-seen order; nothing is re-sorted.
func Scheduled(entries []models.ScheduleEntry) string {
	if len(entries) == 0 {
		return "No products are currently scheduled for monitoring."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d product(s) under scheduled monitoring:\n", len(entries))
	groups := models.GroupByFrequency(entries)
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&b, "\n%s:\n", pair.Key)
		for i, e := range pair.Value {
			fmt.Fprintf(&b, "  %d. %s (%s)\n", i+1, orNA(e.Title), entryIDs(e))
			if e.Retailer != "" {
				fmt.Fprintf(&b, "     Retailer filter: %s\n", e.Retailer)
			}
		}
	}
	return b.String()
}

// Usage renders a billing-period snapshot.
func Usage(p *models.UsagePeriod) string {
	var b strings.Builder
	fmt.Fprintf(&b, "API usage for %s to %s:\n", orNA(p.StartDate), orNA(p.EndDate))
	fmt.Fprintf(&b, "  Credits: %d used of %d (%d remaining)\n", p.CreditsUsed, p.CreditsLimit, p.CreditsRemaining)
	fmt.Fprintf(&b, "  Requests made: %d\n", p.RequestsMade)
	fmt.Fprintf(&b, "  Usage: %.1f%%\n", p.UsagePercentage)
	return b.String()
}

// Credits formats the accounting footer carried by every successful report,
// e.g. "1 credit used, 999 remaining". Zero-cost operations state the zero
// explicitly so callers always get an accounting signal.
func Credits(m *models.Meta) string {
	unit := "credits"
	if m.CreditsUsed == 1 {
		unit = "credit"
	}
	return fmt.Sprintf("%d %s used, %d remaining", m.CreditsUsed, unit, m.CreditsRemaining)
}

// WithCredits appends the accounting footer to a report body.
func WithCredits(body string, m *models.Meta) string {
	return strings.TrimRight(body, "\n") + "\n\n" + Credits(m)
}

func formatPrice(p *float64) string {
	if p == nil {
		return "price " + notAvailable
	}
	return fmt.Sprintf("$%.2f", *p)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func entryIDs(e models.ScheduleEntry) string {
	var ids []string
	if e.Barcode != "" {
		ids = append(ids, "barcode "+e.Barcode)
	}
	if e.ASIN != "" {
		ids = append(ids, "ASIN "+e.ASIN)
	}
	if e.ShopSightID != "" {
		ids = append(ids, "ShopSight ID "+e.ShopSightID)
	}
	if len(ids) == 0 {
		return "no identifiers"
	}
	return strings.Join(ids, ", ")
}
