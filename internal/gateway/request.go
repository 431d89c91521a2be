package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// newRequest builds a fully-qualified, authenticated upstream request.
// Every non-nil parameter is coerced to its string form and travels in the
// query string regardless of HTTP method; the API never takes a body.
// Construction is idempotent: same inputs, same request shape.
func (c *Client) newRequest(ctx context.Context, method, path string, params map[string]any) (*http.Request, error) {
	q := url.Values{}
	for name, value := range params {
		if value == nil {
			continue
		}
		q.Set(name, cast.ToString(value))
	}

	endpoint := c.baseURL + path
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}
