package api

import (
	"context"
	"net/http"

	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

const investmentsRoute = "/investments"

// ListInvestments returns a page of investments.
func ListInvestments(ctx context.Context, d Dispatcher, params types.ListInvestmentsParams) (*types.Result, error) {
	return d.Dispatch(ctx, Call{Method: http.MethodGet, Route: investmentsRoute, Query: params.Query()})
}

// CreateInvestment opens a new investment.
func CreateInvestment(ctx context.Context, d Dispatcher, req types.CreateInvestmentRequest) (*types.Result, error) {
	return d.Dispatch(ctx, Call{Method: http.MethodPost, Route: investmentsRoute, Body: req})
}
