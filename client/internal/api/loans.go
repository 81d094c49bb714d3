package api

import (
	"context"
	"net/http"

	"github.com/AlliediMpact/coinbox-go/client/internal/types"
)

const (
	loansRoute = "/loans"
	loanRoute  = "/loans/{loanId}"
)

// ListLoans returns a page of loans.
func ListLoans(ctx context.Context, d Dispatcher, params types.ListLoansParams) (*types.Result, error) {
	return d.Dispatch(ctx, Call{Method: http.MethodGet, Route: loansRoute, Query: params.Query()})
}

// GetLoan retrieves a loan by ID.
func GetLoan(ctx context.Context, d Dispatcher, loanID string) (*types.Result, error) {
	return d.Dispatch(ctx, Call{
		Method:     http.MethodGet,
		Route:      loanRoute,
		PathParams: map[string]string{"loanId": loanID},
	})
}

// CreateLoan submits a new loan application.
func CreateLoan(ctx context.Context, d Dispatcher, req types.CreateLoanRequest) (*types.Result, error) {
	return d.Dispatch(ctx, Call{Method: http.MethodPost, Route: loansRoute, Body: req})
}
