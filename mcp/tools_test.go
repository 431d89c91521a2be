package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsight/shopsight-mcp/internal/gateway"
)

const testToken = "ss_test_abcdefghijklmnopqrstuvwxyz012345"

// newTestHandlers wires the tool handlers to a fake upstream and counts how
// many requests actually reach it.
func newTestHandlers(t *testing.T, handler http.HandlerFunc) (*handlers, *int) {
	t.Helper()
	calls := new(int)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return &handlers{gw: gateway.New(srv.URL, testToken, "shopsight-mcp/test", srv.Client())}, calls
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestLookupReportsProductAndCredits(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "012345678901", r.URL.Query().Get("identifier"))
		w.Write([]byte(`{"data":[{"title":"Widget","brand":"Acme"}],"meta":{"credits_used":1,"credits_remaining":999}}`))
	})

	res, err := h.handleLookup(context.Background(), toolRequest(map[string]any{"identifiers": "012345678901"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "Widget")
	assert.Contains(t, text, "Acme")
	assert.Equal(t, 1, strings.Count(text, "1 credit used, 999 remaining"))
}

func TestLookupBatchJoinsIdentifiers(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "012345678901,B08N5WRWNW", r.URL.Query().Get("identifier"))
		w.Write([]byte(`{"data":[{"title":"Widget"},{"title":"Gadget"}],"meta":{"credits_used":2,"credits_remaining":998}}`))
	})

	res, err := h.handleLookup(context.Background(), toolRequest(map[string]any{"identifiers": "012345678901, B08N5WRWNW"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "1. Widget")
	assert.Contains(t, text, "2. Gadget")
}

func TestLookupEmptyIdentifierRejectedBeforeNetwork(t *testing.T) {
	h, calls := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {})

	res, err := h.handleLookup(context.Background(), toolRequest(map[string]any{"identifiers": "  "}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, 0, *calls)
}

func TestScheduleInvalidFrequencyRejectedBeforeNetwork(t *testing.T) {
	h, calls := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {})

	res, err := h.handleSchedule(context.Background(), toolRequest(map[string]any{
		"identifier": "012345678901",
		"schedule":   "monthly",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, 0, *calls, "no request may be constructed for an invalid frequency")
	assert.Contains(t, resultText(t, res), "hourly, daily, weekly")
}

func TestScheduleSendsFrequencyAsQueryParam(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "weekly", r.URL.Query().Get("schedule"))
		w.Write([]byte(`{"data":[],"meta":{"credits_used":0,"credits_remaining":1000}}`))
	})

	res, err := h.handleSchedule(context.Background(), toolRequest(map[string]any{
		"identifier": "012345678901",
		"schedule":   "weekly",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "weekly price monitoring")
}

func TestHistoryRejectsBadDates(t *testing.T) {
	h, calls := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {})

	res, err := h.handleHistory(context.Background(), toolRequest(map[string]any{
		"identifier": "012345678901",
		"start_date": "01/02/2024",
		"end_date":   "2024-02-01",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, 0, *calls)
	assert.Contains(t, resultText(t, res), "YYYY-MM-DD")
}

func TestUpstream404BecomesFailureResult(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	})

	res, err := h.handleOffers(context.Background(), toolRequest(map[string]any{"identifier": "012345678901"}))
	require.NoError(t, err, "upstream failures must not escape the handler")
	assert.True(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "404")
	assert.Contains(t, text, "not found")
}

func TestOffersSortedInReport(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"retailer":"unpriced.example","price":null},
			{"retailer":"walmart.com","price":24.99},
			{"retailer":"amazon.com","price":19.99}
		],"meta":{"credits_used":1,"credits_remaining":998}}`))
	})

	res, err := h.handleOffers(context.Background(), toolRequest(map[string]any{"identifier": "012345678901"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.True(t, strings.Index(text, "amazon.com") < strings.Index(text, "walmart.com"))
	assert.True(t, strings.Index(text, "walmart.com") < strings.Index(text, "unpriced.example"))
}

func TestListScheduledGroupsByFrequency(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"title":"Widget","schedule":"daily"},
			{"title":"Gadget","schedule":"hourly"},
			{"title":"Gizmo","schedule":"daily"}
		],"meta":{"credits_used":0,"credits_remaining":1000}}`))
	})

	res, err := h.handleListScheduled(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	daily := strings.Index(text, "daily:")
	hourly := strings.Index(text, "hourly:")
	assert.True(t, daily >= 0 && daily < hourly, "daily group seen first must render first")
	// Zero-cost listings still carry an explicit accounting line.
	assert.Contains(t, text, "0 credits used, 1000 remaining")
}

func TestUnscheduleUsesDelete(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "012345678901", r.URL.Query().Get("identifier"))
		w.Write([]byte(`{"data":[],"meta":{"credits_used":0,"credits_remaining":1000}}`))
	})

	res, err := h.handleUnschedule(context.Background(), toolRequest(map[string]any{"identifier": "012345678901"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "0 credits used")
}

func TestUsageSnapshot(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usage", r.URL.Path)
		w.Write([]byte(`{"data":[{"start_date":"2024-01-01","end_date":"2024-01-31","credits_used":250,"credits_limit":1000,"credits_remaining":750,"requests_made":310,"usage_percentage":25.0}],"meta":{"credits_used":0,"credits_remaining":750}}`))
	})

	res, err := h.handleUsage(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "250 used of 1000")
	assert.Contains(t, text, "310")
}

func TestMissingMetaBecomesFailureResult(t *testing.T) {
	h, _ := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	res, err := h.handleListScheduled(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "meta")
}
