package models

import (
	"encoding/json"
	"fmt"
)

// The decode helpers turn an envelope's raw data sequence into typed records.
// Upstream ordering is preserved verbatim; an empty or absent sequence decodes
// to an empty slice, never an error.

func DecodeProducts(raw json.RawMessage) ([]Product, error) {
	return decodeList[Product](raw, "products")
}

func DecodeOffers(raw json.RawMessage) ([]Offer, error) {
	return decodeList[Offer](raw, "offers")
}

func DecodeHistory(raw json.RawMessage) ([]HistoryPoint, error) {
	return decodeList[HistoryPoint](raw, "history points")
}

func DecodeScheduled(raw json.RawMessage) ([]ScheduleEntry, error) {
	return decodeList[ScheduleEntry](raw, "schedule entries")
}

// DecodeUsage expects the usage endpoint's single-snapshot sequence.
func DecodeUsage(raw json.RawMessage) (*UsagePeriod, error) {
	periods, err := decodeList[UsagePeriod](raw, "usage periods")
	if err != nil {
		return nil, err
	}
	if len(periods) == 0 {
		return nil, fmt.Errorf("usage response contained no period snapshot")
	}
	return &periods[0], nil
}

func decodeList[T any](raw json.RawMessage, what string) ([]T, error) {
	if len(raw) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", what, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
