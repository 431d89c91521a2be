// Package validate checks and normalizes tool-call arguments before any
// network traffic happens. All checks are pure; a validation failure means
// the upstream API was never contacted.
package validate

import (
	"fmt"
	"strings"
	"time"
)

// Frequencies accepted by the scheduled-monitoring endpoints.
const (
	FrequencyHourly = "hourly"
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

const dateLayout = "2006-01-02"

// Identifier rejects empty product identifiers. Matching semantics (barcode,
// ASIN, URL, model number, ShopSight ID) are upstream's business; anything
// non-empty is passed through verbatim.
func Identifier(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("product identifier must not be empty")
	}
	return nil
}

// Identifiers validates a batch and joins it into the comma-separated form
// the upstream API expects. The batch itself must be non-empty.
func Identifiers(ids []string) (string, error) {
	if len(ids) == 0 {
		return "", fmt.Errorf("at least one product identifier is required")
	}
	for _, id := range ids {
		if err := Identifier(id); err != nil {
			return "", err
		}
	}
	return strings.Join(ids, ","), nil
}

// Date requires the ISO calendar-date form YYYY-MM-DD. Whether start ≤ end
// is left to upstream, which owns valid-range semantics.
func Date(name, value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("%s must be a calendar date in YYYY-MM-DD form, got %q", name, value)
	}
	return nil
}

// Frequency requires exactly one of hourly, daily, weekly.
func Frequency(value string) error {
	switch value {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly:
		return nil
	}
	return fmt.Errorf("schedule must be one of hourly, daily, weekly; got %q", value)
}

// Retailer rejects empty retailer domains where a retailer is required.
func Retailer(domain string) error {
	if strings.TrimSpace(domain) == "" {
		return fmt.Errorf("retailer domain must not be empty")
	}
	return nil
}
