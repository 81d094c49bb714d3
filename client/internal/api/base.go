package api

import (
	"context"

	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

// Dispatcher performs one request/response cycle. Every per-resource function
// in this package reduces to a single Dispatch call.
type Dispatcher interface {
	Dispatch(ctx context.Context, call Call) (*types.Result, error)
}

// Call describes one HTTP exchange. Route is a path template relative to the
// base URL; {name} segments are filled from PathParams and escaped.
type Call struct {
	Method     string
	Route      string
	PathParams map[string]string
	Query      map[string]string
	Body       any
}
