package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/AlliediMpact/coinbox-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// LoanHandler exposes loan tools.
type LoanHandler struct {
	client *client.Client
}

func NewLoanHandler(c *client.Client) *LoanHandler { return &LoanHandler{client: c} }

func (lh *LoanHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_loans", append([]mcp.ToolOption{
		mcp.WithDescription("List loans, optionally filtered by status or type"),
		mcp.WithString("status", mcp.Description("Loan status filter")),
		mcp.WithString("type", mcp.Description("Loan type filter")),
	}, pageOptions()...)...)

	get := mcp.NewTool("get_loan",
		mcp.WithDescription("Get one loan by ID"),
		mcp.WithString("loan_id", mcp.Required(), mcp.Description("Loan ID")),
	)

	create := mcp.NewTool("create_loan",
		mcp.WithDescription("Create a loan; returns the created loan"),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Principal amount")),
		mcp.WithNumber("interest_rate", mcp.Required(), mcp.Description("Interest rate in percent")),
		mcp.WithNumber("term", mcp.Required(), mcp.Description("Term in months")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Loan type, e.g. personal")),
		mcp.WithString("purpose", mcp.Description("Optional purpose")),
		mcp.WithObject("collateral", mcp.Description("Optional collateral description")),
	)

	s.AddTool(list, lh.handleListLoans)
	s.AddTool(get, lh.handleGetLoan)
	s.AddTool(create, lh.handleCreateLoan)
	return nil
}

func (lh *LoanHandler) handleListLoans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := client.ListLoansParams{
		Page:     req.GetInt("page", client.DefaultPage),
		Limit:    req.GetInt("limit", client.DefaultLimit),
		Status:   req.GetString("status", ""),
		LoanType: req.GetString("type", ""),
	}

	log.Debug().Int("page", params.Page).Int("limit", params.Limit).Msg("list_loans invoked")

	start := time.Now()
	res, err := lh.client.ListLoans(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_loans failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list loans: %v", err)), nil
	}
	return payloadResult(res), nil
}

func (lh *LoanHandler) handleGetLoan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	loanID, err := req.RequireString("loan_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Str("loan_id", loanID).Msg("get_loan invoked")

	start := time.Now()
	res, err := lh.client.GetLoan(ctx, loanID)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("loan_id", loanID).Dur("elapsed", elapsed).Msg("get_loan failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get loan: %v", err)), nil
	}
	return payloadResult(res), nil
}

func (lh *LoanHandler) handleCreateLoan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount, err := req.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rate, err := req.RequireFloat("interest_rate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	term, err := req.RequireInt("term")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	loanType, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := client.CreateLoanRequest{
		Amount:       amount,
		InterestRate: rate,
		Term:         term,
		LoanType:     loanType,
		Purpose:      req.GetString("purpose", ""),
		Collateral:   req.GetArguments()["collateral"],
	}

	log.Debug().Float64("amount", amount).Str("type", loanType).Msg("create_loan invoked")

	start := time.Now()
	res, err := lh.client.CreateLoan(ctx, body)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("create_loan failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to create loan: %v", err)), nil
	}
	return payloadResult(res), nil
}
