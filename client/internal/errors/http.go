package errors

import (
	stderrors "errors"
	"fmt"
)

// DefaultAPIMessage is used when an error body has no usable "error" field.
const DefaultAPIMessage = "Request failed"

// NewAPIError builds an API error from a non-2xx response whose body decoded
// to body. The message comes from the body's "error" string when present.
func NewAPIError(statusCode int, body any, requestID string) *Error {
	msg := DefaultAPIMessage
	if m, ok := body.(map[string]any); ok {
		if s, ok := m["error"].(string); ok && s != "" {
			msg = s
		}
	}
	return &Error{
		Kind:       KindAPI,
		Message:    msg,
		StatusCode: statusCode,
		Details:    body,
		RequestID:  requestID,
	}
}

// NewNetworkError wraps a transport or decoding failure.
func NewNetworkError(operation string, err error, requestID string) *Error {
	return &Error{
		Kind:       KindNetwork,
		Message:    err.Error(),
		RequestID:  requestID,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsAPI reports whether err is an API error.
func IsAPI(err error) bool {
	e, ok := As(err)
	return ok && e.Kind == KindAPI
}

// IsNetwork reports whether err is a network error.
func IsNetwork(err error) bool {
	e, ok := As(err)
	return ok && e.Kind == KindNetwork
}
