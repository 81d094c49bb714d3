package types

import "strconv"

// Defaults applied to list queries when Page or Limit is zero.
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// Wire names used in query strings and request bodies.
const (
	WirePage           = "page"
	WireLimit          = "limit"
	WireStatus         = "status"
	WireType           = "type"
	WireStartDate      = "startDate"
	WireEndDate        = "endDate"
	WireOrderType      = "orderType"
	WireCrypto         = "crypto"
	WireInterestRate   = "interestRate"
	WireExpectedReturn = "expectedReturn"
)

// Ptr returns a pointer to v. Use it for optional numeric fields where zero
// must still be sent.
func Ptr[T any](v T) *T { return &v }

// ------------------------------
// List Parameters
// ------------------------------

// ListLoansParams filters GET /loans. Empty string filters are omitted.
type ListLoansParams struct {
	Page     int
	Limit    int
	Status   string
	LoanType string // sent as "type"
}

// Query returns the wire query for p.
func (p ListLoansParams) Query() map[string]string {
	q := pageQuery(p.Page, p.Limit)
	setIf(q, WireStatus, p.Status)
	setIf(q, WireType, p.LoanType)
	return q
}

// ListInvestmentsParams filters GET /investments.
type ListInvestmentsParams struct {
	Page           int
	Limit          int
	Status         string
	InvestmentType string // sent as "type"
}

// Query returns the wire query for p.
func (p ListInvestmentsParams) Query() map[string]string {
	q := pageQuery(p.Page, p.Limit)
	setIf(q, WireStatus, p.Status)
	setIf(q, WireType, p.InvestmentType)
	return q
}

// ListTransactionsParams filters GET /transactions. Dates are ISO-8601 strings
// forwarded verbatim.
type ListTransactionsParams struct {
	Page            int
	Limit           int
	TransactionType string // sent as "type"
	Status          string
	StartDate       string // sent as "startDate"
	EndDate         string // sent as "endDate"
}

// Query returns the wire query for p.
func (p ListTransactionsParams) Query() map[string]string {
	q := pageQuery(p.Page, p.Limit)
	setIf(q, WireType, p.TransactionType)
	setIf(q, WireStatus, p.Status)
	setIf(q, WireStartDate, p.StartDate)
	setIf(q, WireEndDate, p.EndDate)
	return q
}

// ListCryptoOrdersParams filters GET /crypto/orders.
type ListCryptoOrdersParams struct {
	Page      int
	Limit     int
	OrderType string // "buy" or "sell", sent as "orderType"
	Status    string
	Crypto    string
}

// Query returns the wire query for p.
func (p ListCryptoOrdersParams) Query() map[string]string {
	q := pageQuery(p.Page, p.Limit)
	setIf(q, WireOrderType, p.OrderType)
	setIf(q, WireStatus, p.Status)
	setIf(q, WireCrypto, p.Crypto)
	return q
}

func pageQuery(page, limit int) map[string]string {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	return map[string]string{
		WirePage:  strconv.Itoa(page),
		WireLimit: strconv.Itoa(limit),
	}
}

func setIf(q map[string]string, key, value string) {
	if value != "" {
		q[key] = value
	}
}

// ------------------------------
// Create Requests
// ------------------------------

// CreateLoanRequest holds parameters for a new loan
type CreateLoanRequest struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interestRate"`
	Term         int     `json:"term"` // months
	LoanType     string  `json:"type"`
	Purpose      string  `json:"purpose,omitempty"`
	Collateral   any     `json:"collateral,omitempty"`
}

// CreateInvestmentRequest holds parameters for a new investment
type CreateInvestmentRequest struct {
	Amount         float64  `json:"amount"`
	InvestmentType string   `json:"type"`
	Asset          string   `json:"asset"`
	ExpectedReturn *float64 `json:"expectedReturn,omitempty"`
	Duration       *int     `json:"duration,omitempty"` // months
}

// CreateCryptoOrderRequest holds parameters for a new crypto order. Price is
// only meaningful for limit orders.
type CreateCryptoOrderRequest struct {
	Crypto    string   `json:"crypto"`
	OrderType string   `json:"orderType"`
	Amount    float64  `json:"amount"`
	Price     *float64 `json:"price,omitempty"`
}
