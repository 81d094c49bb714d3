package client

import "github.com/AlliediMpact/coinbox-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
// Requests
type (
	ListLoansParams          = types.ListLoansParams
	ListInvestmentsParams    = types.ListInvestmentsParams
	ListTransactionsParams   = types.ListTransactionsParams
	ListCryptoOrdersParams   = types.ListCryptoOrdersParams
	CreateLoanRequest        = types.CreateLoanRequest
	CreateInvestmentRequest  = types.CreateInvestmentRequest
	CreateCryptoOrderRequest = types.CreateCryptoOrderRequest

	// Resource records
	Record      = types.Record
	Loan        = types.Loan
	Investment  = types.Investment
	Transaction = types.Transaction
	CryptoOrder = types.CryptoOrder

	// Responses
	Result = types.Result
)

// Defaults applied by list methods when Page or Limit is zero.
const (
	DefaultPage  = types.DefaultPage
	DefaultLimit = types.DefaultLimit
)

// Ptr returns a pointer to v, for optional fields such as
// CreateInvestmentRequest.ExpectedReturn.
func Ptr[T any](v T) *T { return types.Ptr(v) }
