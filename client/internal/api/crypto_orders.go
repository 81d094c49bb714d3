package api

import (
	"context"
	"net/http"

	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

const cryptoOrdersRoute = "/crypto/orders"

// ListCryptoOrders returns a page of crypto orders.
func ListCryptoOrders(ctx context.Context, d Dispatcher, params types.ListCryptoOrdersParams) (*types.Result, error) {
	return d.Dispatch(ctx, Call{Method: http.MethodGet, Route: cryptoOrdersRoute, Query: params.Query()})
}

// CreateCryptoOrder places a buy or sell order.
func CreateCryptoOrder(ctx context.Context, d Dispatcher, req types.CreateCryptoOrderRequest) (*types.Result, error) {
	return d.Dispatch(ctx, Call{Method: http.MethodPost, Route: cryptoOrdersRoute, Body: req})
}
