// Package gateway is the single path to the ShopSight Data API: it builds
// authenticated requests, executes them, and classifies every outcome as a
// parsed envelope, an UpstreamError, a TransportError, or an IntegrityError.
// It performs no retries, caching, or rate limiting of its own; upstream
// meters consumption via credits and this layer only reports them.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopsight/shopsight-mcp/internal/httputil"
	"github.com/shopsight/shopsight-mcp/internal/models"
)

// Upstream endpoints. Every operation is one of these paths plus a method;
// there is no other way out of this process.
const (
	PathProducts  = "/products"
	PathOffers    = "/products/offers"
	PathHistory   = "/products/offers/history"
	PathScheduled = "/products/scheduled"
	PathUsage     = "/usage"
)

// Envelope is the top-level object every upstream response carries: an
// ordered data sequence (order = upstream relevance) plus credit accounting.
type Envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *models.Meta    `json:"meta"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Client talks to the ShopSight Data API. It is immutable after construction
// and safe for concurrent use; each call builds its own request and shares no
// mutable state.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// New creates a Client for the given base URL and credential. A nil
// httpClient gets the default transport; the hosting environment may inject
// one carrying its own timeout, which this layer inherits rather than
// enforcing its own.
func New(baseURL, token, userAgent string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httputil.NewHTTPClient(nil)
	}
	return &Client{
		baseURL:   baseURL,
		token:     token,
		userAgent: userAgent,
		http:      httpClient,
	}
}

// Do executes one upstream call and classifies the result. Non-2xx statuses
// become *UpstreamError with the upstream message ("Unknown error" when the
// body carries none). Network and JSON-parse failures become *TransportError.
// A 2xx body without a meta block violates the envelope contract and becomes
// *IntegrityError. Every failure propagates immediately; retrying is the
// caller's decision.
func (c *Client) Do(ctx context.Context, method, path string, params map[string]any) (*Envelope, error) {
	req, err := c.newRequest(ctx, method, path, params)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Unknown error"
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Error != "" {
			msg = eb.Error
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &TransportError{Cause: err}
	}
	if env.Meta == nil {
		return nil, &IntegrityError{Reason: "successful response is missing its meta block"}
	}
	return &env, nil
}
