package types

import "errors"

// ------------------------------
// Shared Errors
// ------------------------------

// ErrClientClosed is returned by every operation invoked after Close.
var ErrClientClosed = errors.New("coinbox: client is closed")

// ErrMissingAPIKey is returned by New when no API key is supplied.
var ErrMissingAPIKey = errors.New("coinbox: api key cannot be empty")
