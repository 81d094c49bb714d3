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

// TransactionHandler exposes the transaction listing tool.
type TransactionHandler struct {
	client *client.Client
}

func NewTransactionHandler(c *client.Client) *TransactionHandler {
	return &TransactionHandler{client: c}
}

func (th *TransactionHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_transactions", append([]mcp.ToolOption{
		mcp.WithDescription("List transactions, optionally filtered by type, status or date range"),
		mcp.WithString("type", mcp.Description("Transaction type filter")),
		mcp.WithString("status", mcp.Description("Transaction status filter")),
		mcp.WithString("start_date", mcp.Description("Earliest date, e.g. 2024-01-01")),
		mcp.WithString("end_date", mcp.Description("Latest date, e.g. 2024-01-31")),
	}, pageOptions()...)...)

	s.AddTool(list, th.handleListTransactions)
	return nil
}

func (th *TransactionHandler) handleListTransactions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := client.ListTransactionsParams{
		Page:            req.GetInt("page", client.DefaultPage),
		Limit:           req.GetInt("limit", client.DefaultLimit),
		TransactionType: req.GetString("type", ""),
		Status:          req.GetString("status", ""),
		StartDate:       req.GetString("start_date", ""),
		EndDate:         req.GetString("end_date", ""),
	}

	log.Debug().
		Int("page", params.Page).
		Int("limit", params.Limit).
		Str("start_date", params.StartDate).
		Str("end_date", params.EndDate).
		Msg("list_transactions invoked")

	start := time.Now()
	res, err := th.client.ListTransactions(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_transactions failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list transactions: %v", err)), nil
	}
	return payloadResult(res), nil
}
