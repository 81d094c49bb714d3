package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/AlliediMpact/coinbox-go/client"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var apiKey string
var baseURL string
var debug bool

const commandTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "coinboxCli",
		Short:         "coinboxCli for managing loans, investments, transactions and crypto orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("COINBOX_API_KEY"), "Coin Box API key (default $COINBOX_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", getEnv("COINBOX_BASE_URL", client.DefaultBaseURL), "Base URL of the Coin Box API")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Log every HTTP exchange (credential redacted)")

	rootCmd.AddCommand(newListLoansCmd())
	rootCmd.AddCommand(newGetLoanCmd())
	rootCmd.AddCommand(newCreateLoanCmd())
	rootCmd.AddCommand(newListInvestmentsCmd())
	rootCmd.AddCommand(newCreateInvestmentCmd())
	rootCmd.AddCommand(newListTransactionsCmd())
	rootCmd.AddCommand(newListCryptoOrdersCmd())
	rootCmd.AddCommand(newCreateCryptoOrderCmd())

	return rootCmd
}

// run builds a client, invokes op under a bounded context and prints the
// payload as indented JSON.
func run(cmd *cobra.Command, name string, op func(context.Context, *client.Client) (*client.Result, error)) error {
	c, err := client.New(apiKey, client.WithBaseURL(baseURL), client.WithDebugLogging(debug))
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	log.Debug().Str("command", name).Str("base_url", c.BaseURL()).Msg("dispatching")

	start := time.Now()
	res, err := op(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("command", name).Dur("elapsed", elapsed).Msg(name + " failed")
		return err
	}
	log.Debug().Str("command", name).Dur("elapsed", elapsed).Msg(name + " completed")

	var out bytes.Buffer
	if err := json.Indent(&out, res.Raw(), "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	out.WriteByte('\n')
	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}

func addPageFlags(cmd *cobra.Command, page, limit *int) {
	cmd.Flags().IntVar(page, "page", client.DefaultPage, "Page number")
	cmd.Flags().IntVar(limit, "limit", client.DefaultLimit, "Items per page")
}

func newListLoansCmd() *cobra.Command {
	var p client.ListLoansParams

	cmd := &cobra.Command{
		Use:   "list-loans",
		Short: "List loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "list loans", func(ctx context.Context, c *client.Client) (*client.Result, error) {
				return c.ListLoans(ctx, p)
			})
		},
	}
	addPageFlags(cmd, &p.Page, &p.Limit)
	cmd.Flags().StringVar(&p.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&p.LoanType, "type", "", "Filter by loan type")
	return cmd
}

func newGetLoanCmd() *cobra.Command {
	var loanID string

	cmd := &cobra.Command{
		Use:   "get-loan",
		Short: "Get a loan by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get loan", func(ctx context.Context, c *client.Client) (*client.Result, error) {
				return c.GetLoan(ctx, loanID)
			})
		},
	}
	cmd.Flags().StringVar(&loanID, "loan-id", "", "Loan ID (required)")
	_ = cmd.MarkFlagRequired("loan-id")
	return cmd
}

func newCreateLoanCmd() *cobra.Command {
	var req client.CreateLoanRequest
	var collateral string

	cmd := &cobra.Command{
		Use:   "create-loan",
		Short: "Create a new loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if collateral != "" {
				var v any
				if err := json.Unmarshal([]byte(collateral), &v); err != nil {
					return fmt.Errorf("--collateral must be JSON: %w", err)
				}
				req.Collateral = v
			}
			return run(cmd, "create loan", func(ctx context.Context, c *client.Client) (*client.Result, error) {
				return c.CreateLoan(ctx, req)
			})
		},
	}
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "Principal amount (required)")
	cmd.Flags().Float64Var(&req.InterestRate, "interest-rate", 0, "Interest rate in percent (required)")
	cmd.Flags().IntVar(&req.Term, "term", 0, "Term in months (required)")
	cmd.Flags().StringVar(&req.LoanType, "type", "", "Loan type (required)")
	cmd.Flags().StringVar(&req.Purpose, "purpose", "", "Purpose (optional)")
	cmd.Flags().StringVar(&collateral, "collateral", "", "Collateral as a JSON value (optional)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("interest-rate")
	_ = cmd.MarkFlagRequired("term")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newListInvestmentsCmd() *cobra.Command {
	var p client.ListInvestmentsParams

	cmd := &cobra.Command{
		Use:   "list-investments",
		Short: "List investments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "list investments", func(ctx context.Context, c *client.Client) (*client.Result, error) {
				return c.ListInvestments(ctx, p)
			})
		},
	}
	addPageFlags(cmd, &p.Page, &p.Limit)
	cmd.Flags().StringVar(&p.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&p.InvestmentType, "type", "", "Filter by investment type")
	return cmd
}

func newCreateInvestmentCmd() *cobra.Command {
	var req client.CreateInvestmentRequest
	var expectedReturn float64
	var duration int

	cmd := &cobra.Command{
		Use:   "create-investment",
		Short: "Create a new investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("expected-return") {
				req.ExpectedReturn = client.Ptr(expectedReturn)
			}
			if cmd.Flags().Changed("duration") {
				req.Duration = client.Ptr(duration)
			}
			return run(cmd, "create investment", func(ctx context.Context, c *client.Client) (*client.Result, error) {
				return c.CreateInvestment(ctx, req)
			})
		},
	}
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "Amount to invest (required)")
	cmd.Flags().StringVar(&req.InvestmentType, "type", "", "Investment type (required)")
	cmd.Flags().StringVar(&req.Asset, "asset", "", "Asset (required)")
	cmd.Flags().Float64Var(&expectedReturn, "expected-return", 0, "Expected return in percent (optional)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration (optional)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("asset")
	return cmd
}

func newListTransactionsCmd() *cobra.Command {
	var p client.ListTransactionsParams

	cmd := &cobra.Command{
		Use:   "list-transactions",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "list transactions", func(ctx context.Context, c *client.Client) (*client.Result, error) {
				return c.ListTransactions(ctx, p)
			})
		},
	}
	addPageFlags(cmd, &p.Page, &p.Limit)
	cmd.Flags().StringVar(&p.TransactionType, "type", "", "Filter by transaction type")
	cmd.Flags().StringVar(&p.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&p.StartDate, "start-date", "", "Earliest date, e.g. 2024-01-01")
	cmd.Flags().StringVar(&p.EndDate, "end-date", "", "Latest date, e.g. 2024-01-31")
	return cmd
}

func newListCryptoOrdersCmd() *cobra.Command {
	var p client.ListCryptoOrdersParams

	cmd := &cobra.Command{
		Use:   "list-crypto-orders",
		Short: "List crypto orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "list crypto orders", func(ctx context.Context, c *client.Client) (*client.Result, error) {
				return c.ListCryptoOrders(ctx, p)
			})
		},
	}
	addPageFlags(cmd, &p.Page, &p.Limit)
	cmd.Flags().StringVar(&p.OrderType, "order-type", "", "Filter by order type (buy or sell)")
	cmd.Flags().StringVar(&p.Status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&p.Crypto, "crypto", "", "Filter by cryptocurrency symbol")
	return cmd
}

func newCreateCryptoOrderCmd() *cobra.Command {
	var req client.CreateCryptoOrderRequest
	var price float64

	cmd := &cobra.Command{
		Use:   "create-crypto-order",
		Short: "Place a crypto order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("price") {
				req.Price = client.Ptr(price)
			}
			return run(cmd, "create crypto order", func(ctx context.Context, c *client.Client) (*client.Result, error) {
				return c.CreateCryptoOrder(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Crypto, "crypto", "", "Cryptocurrency symbol, e.g. BTC (required)")
	cmd.Flags().StringVar(&req.OrderType, "order-type", "", "buy or sell (required)")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "Quantity (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "Limit price (optional; market order when omitted)")
	_ = cmd.MarkFlagRequired("crypto")
	_ = cmd.MarkFlagRequired("order-type")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
