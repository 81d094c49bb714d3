package api

import (
	"context"
	"net/http"

	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

const transactionsRoute = "/transactions"

// ListTransactions returns a page of transactions.
func ListTransactions(ctx context.Context, d Dispatcher, params types.ListTransactionsParams) (*types.Result, error) {
	return d.Dispatch(ctx, Call{Method: http.MethodGet, Route: transactionsRoute, Query: params.Query()})
}
