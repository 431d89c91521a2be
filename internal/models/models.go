package models

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Meta is the credit-accounting block upstream attaches to every successful
// response envelope.
type Meta struct {
	CreditsUsed      int `json:"credits_used"`
	CreditsRemaining int `json:"credits_remaining"`
}

// Product is a single catalog record. Title is the only field upstream
// guarantees; everything else may be absent and is rendered with an explicit
// "not available" marker rather than dropped.
type Product struct {
	Title       string `json:"title"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	Color       string `json:"color,omitempty"`
	Model       string `json:"model,omitempty"`
	MPN         string `json:"mpn,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
	ASIN        string `json:"asin,omitempty"`
	ShopSightID string `json:"shopsight_id,omitempty"`
	ImageCount  int    `json:"image_count,omitempty"`
}

// Offer is one retailer's listing for a product. Price is nullable: upstream
// reports offers it has seen but not always a current price.
type Offer struct {
	Retailer     string   `json:"retailer"`
	Price        *float64 `json:"price"`
	Availability string   `json:"availability,omitempty"`
	Condition    string   `json:"condition,omitempty"`
	Seller       string   `json:"seller,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// HistoryPoint is one observation in a retailer's price history. The
// timestamp is kept as the upstream string; history order is upstream's and
// is never re-sorted here.
type HistoryPoint struct {
	Timestamp    string   `json:"timestamp"`
	Price        *float64 `json:"price"`
	Availability string   `json:"availability,omitempty"`
}

// ScheduleEntry is a product under scheduled monitoring. Existence and
// frequency live entirely upstream; this is a read model.
type ScheduleEntry struct {
	Title       string `json:"title"`
	Barcode     string `json:"barcode,omitempty"`
	ASIN        string `json:"asin,omitempty"`
	ShopSightID string `json:"shopsight_id,omitempty"`
	Schedule    string `json:"schedule"`
	Retailer    string `json:"retailer,omitempty"`
}

// UsagePeriod is a read-only snapshot of API consumption for a billing window.
type UsagePeriod struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	CreditsUsed      int     `json:"credits_used"`
	CreditsLimit     int     `json:"credits_limit"`
	CreditsRemaining int     `json:"credits_remaining"`
	RequestsMade     int     `json:"requests_made"`
	UsagePercentage  float64 `json:"usage_percentage"`
}

// SortOffers orders offers ascending by price, with null-price offers after
// every priced one. The sort is stable so equal-priced and null-priced offers
// keep their upstream relative order.
func SortOffers(offers []Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i].Price, offers[j].Price
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

// GroupByFrequency buckets schedule entries by their frequency, preserving
// first-seen order of frequencies and of entries within each bucket.
func GroupByFrequency(entries []ScheduleEntry) *orderedmap.OrderedMap[string, []ScheduleEntry] {
	groups := orderedmap.New[string, []ScheduleEntry]()
	for _, e := range entries {
		bucket, _ := groups.Get(e.Schedule)
		groups.Set(e.Schedule, append(bucket, e))
	}
	return groups
}
