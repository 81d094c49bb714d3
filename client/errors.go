package client

import (
	sdkerrors "github.com/AlliediMpact/coinbox-go/client/internal/errors"
	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

// Error is returned by every operation that reached the transport. Inspect
// Kind to tell API rejections from network failures.
type Error = sdkerrors.Error

// ErrorKind distinguishes API errors from network errors.
type ErrorKind = sdkerrors.Kind

const (
	KindAPI     = sdkerrors.KindAPI
	KindNetwork = sdkerrors.KindNetwork
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrClientClosed  = types.ErrClientClosed
	ErrMissingAPIKey = types.ErrMissingAPIKey
)

// AsError extracts the SDK error from err's chain.
func AsError(err error) (*Error, bool) { return sdkerrors.As(err) }

// IsAPIError reports whether the service rejected the request.
func IsAPIError(err error) bool { return sdkerrors.IsAPI(err) }

// IsNetworkError reports whether no usable response was received.
func IsNetworkError(err error) bool { return sdkerrors.IsNetwork(err) }

// StatusCode returns the HTTP status of an API error, or 0.
func StatusCode(err error) int {
	if e, ok := sdkerrors.As(err); ok {
		return e.StatusCode
	}
	return 0
}
