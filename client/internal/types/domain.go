package types

import "time"

// ------------------------------
// Resource Records
// ------------------------------

// Record is a server-defined resource passed through unmodified.
type Record map[string]any

// Loan represents a loan
type Loan struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	InterestRate float64   `json:"interestRate"`
	Term         int       `json:"term"`
	LoanType     string    `json:"type"`
	Status       string    `json:"status"`
	Purpose      string    `json:"purpose,omitempty"`
	Collateral   any       `json:"collateral,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Investment represents an investment
type Investment struct {
	ID             string    `json:"id"`
	Amount         float64   `json:"amount"`
	InvestmentType string    `json:"type"`
	Asset          string    `json:"asset"`
	ExpectedReturn float64   `json:"expectedReturn"`
	Duration       int       `json:"duration"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Transaction represents a ledger transaction
type Transaction struct {
	ID              string    `json:"id"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"type"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CryptoOrder represents a buy or sell order for a cryptocurrency
type CryptoOrder struct {
	ID        string    `json:"id"`
	Crypto    string    `json:"crypto"`
	OrderType string    `json:"orderType"`
	Amount    float64   `json:"amount"`
	Price     *float64  `json:"price,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
