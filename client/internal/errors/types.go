// Package errors provides the error type returned by every SDK operation.
// A failure is either an API error (the service answered with a non-2xx status)
// or a network error (no usable HTTP response was received).
package errors

import "fmt"

// Kind separates server-side rejections from transport failures.
type Kind int

const (
	// KindAPI errors carry the HTTP status and the parsed error body.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found.
	KindAPI Kind = iota

	// KindNetwork errors have no status code.
	// Examples: connection refused, DNS failure, timeouts, malformed JSON bodies.
	KindNetwork
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "API"
	case KindNetwork:
		return "Network"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the single error type surfaced by the SDK.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int    // HTTP status code (0 for network errors)
	Details    any    // Parsed response body for API errors
	RequestID  string // Value sent in X-Request-ID
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindAPI {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	if e.Underlying != nil {
		return fmt.Sprintf("Network error: %v", e.Underlying)
	}
	return "Network error: " + e.Message
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Underlying
}
