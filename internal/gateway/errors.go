package gateway

import "fmt"

// UpstreamError is a non-2xx answer from the ShopSight Data API. The status
// and upstream message travel with it so the caller can report both; a 429
// (credit/rate limit) arrives here like any other status, untouched.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (HTTP %d): %s", e.Status, e.Message)
}

// TransportError is a failure to complete the HTTP exchange or to read its
// body as JSON: network failure, timeout, or a malformed payload.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// IntegrityError is a 2xx response that violates the envelope contract, such
// as a missing meta block. It is distinct from UpstreamError: the exchange
// succeeded, upstream just broke its own schema.
type IntegrityError struct {
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("upstream contract violation: %s", e.Reason)
}
