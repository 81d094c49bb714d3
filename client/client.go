package client

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AlliediMpact/coinbox-go/client/internal/api"
)

// DefaultBaseURL is the production Coin Box API endpoint.
const DefaultBaseURL = "https://coinbox.example.com/api/v1"

// DefaultTimeout bounds every request, including reading the response body.
const DefaultTimeout = 30 * time.Second

// Version is reported in the default User-Agent.
const Version = "0.1.0"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a Coin Box API client. It is safe for concurrent use; the only
// state shared between calls is the pooled HTTP session.
type Client struct {
	baseURL   string
	apiKey    string // bearer credential, fixed for the client's lifetime
	userAgent string
	timeout   time.Duration
	debug     bool
	http      *http.Client
	logger    zerolog.Logger
	session   *api.Session

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client authenticated with apiKey against DefaultBaseURL.
// Additional options can be provided via functional arguments.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: "coinbox-go/" + Version,
		timeout:   DefaultTimeout,
		http:      &http.Client{},
		logger:    log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.http.Timeout = c.timeout
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport, logger: c.logger}
	}

	c.session = api.NewSession(api.SessionConfig{
		BaseURL:    c.baseURL,
		APIKey:     c.apiKey,
		UserAgent:  c.userAgent,
		HTTPClient: c.http,
		Logger:     c.logger,
		Observe:    c.observe,
	})
	return c, nil
}

// Use constructs a client, passes it to fn and closes it when fn returns or
// panics.
func Use(apiKey string, fn func(*Client) error, opts ...Option) error {
	c, err := New(apiKey, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	return fn(c)
}

// BaseURL returns the normalized endpoint the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases pooled connections. Calls made after Close fail with
// ErrClientClosed. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) ensureOpen() error {
	if atomic.LoadUint32(&c.closedOnce) == 1 {
		return ErrClientClosed
	}
	return nil
}

// observe records metrics and a debug line for every finished call.
func (c *Client) observe(done api.Completion) {
	recordRequest(done)

	c.logger.Debug().
		Str("method", done.Method).
		Str("route", done.Route).
		Int("status_code", done.StatusCode).
		Str("outcome", string(done.Outcome)).
		Str("request_id", done.RequestID).
		Dur("elapsed", done.Elapsed).
		Msg("coinbox request completed")

	if done.Outcome == api.OutcomeSuccess && !done.Enveloped {
		c.logger.Debug().
			Str("method", done.Method).
			Str("route", done.Route).
			Str("request_id", done.RequestID).
			Msg("response not enveloped; returning full body")
	}
}

// Dispatch issues a request to an arbitrary path below the base URL. It is
// the routine every typed method uses; path is also used as the metrics
// route label, so pass a template rather than one containing raw IDs.
func (c *Client) Dispatch(ctx context.Context, method, path string, body any, query map[string]string) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.session.Dispatch(ctx, api.Call{Method: method, Route: path, Body: body, Query: query})
}

// --------------------------------------------------------------------
// Loan operations - delegated to internal/api
// --------------------------------------------------------------------

// ListLoans returns a page of loans. Page and Limit default to 1 and 50.
func (c *Client) ListLoans(ctx context.Context, params ListLoansParams) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return api.ListLoans(ctx, c.session, params)
}

// GetLoan retrieves a specific loan.
func (c *Client) GetLoan(ctx context.Context, loanID string) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return api.GetLoan(ctx, c.session, loanID)
}

// CreateLoan creates a new loan.
func (c *Client) CreateLoan(ctx context.Context, req CreateLoanRequest) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return api.CreateLoan(ctx, c.session, req)
}

// --------------------------------------------------------------------
// Investment operations - delegated to internal/api
// --------------------------------------------------------------------

// ListInvestments returns a page of investments.
func (c *Client) ListInvestments(ctx context.Context, params ListInvestmentsParams) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return api.ListInvestments(ctx, c.session, params)
}

// CreateInvestment creates a new investment.
func (c *Client) CreateInvestment(ctx context.Context, req CreateInvestmentRequest) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return api.CreateInvestment(ctx, c.session, req)
}

// --------------------------------------------------------------------
// Transaction operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTransactions returns a page of transactions.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return api.ListTransactions(ctx, c.session, params)
}

// --------------------------------------------------------------------
// Crypto order operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCryptoOrders returns a page of crypto orders.
func (c *Client) ListCryptoOrders(ctx context.Context, params ListCryptoOrdersParams) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return api.ListCryptoOrders(ctx, c.session, params)
}

// CreateCryptoOrder places a new crypto order.
func (c *Client) CreateCryptoOrder(ctx context.Context, req CreateCryptoOrderRequest) (*Result, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	return api.CreateCryptoOrder(ctx, c.session, req)
}
