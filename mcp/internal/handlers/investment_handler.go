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

// InvestmentHandler exposes investment tools.
type InvestmentHandler struct {
	client *client.Client
}

func NewInvestmentHandler(c *client.Client) *InvestmentHandler {
	return &InvestmentHandler{client: c}
}

func (ih *InvestmentHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_investments", append([]mcp.ToolOption{
		mcp.WithDescription("List investments, optionally filtered by status or type"),
		mcp.WithString("status", mcp.Description("Investment status filter")),
		mcp.WithString("type", mcp.Description("Investment type filter")),
	}, pageOptions()...)...)

	create := mcp.NewTool("create_investment",
		mcp.WithDescription("Create an investment; returns the created investment"),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount to invest")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Investment type")),
		mcp.WithString("asset", mcp.Required(), mcp.Description("Asset to invest in")),
		mcp.WithNumber("expected_return", mcp.Description("Optional expected return in percent")),
		mcp.WithNumber("duration", mcp.Description("Optional duration")),
	)

	s.AddTool(list, ih.handleListInvestments)
	s.AddTool(create, ih.handleCreateInvestment)
	return nil
}

func (ih *InvestmentHandler) handleListInvestments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := client.ListInvestmentsParams{
		Page:           req.GetInt("page", client.DefaultPage),
		Limit:          req.GetInt("limit", client.DefaultLimit),
		Status:         req.GetString("status", ""),
		InvestmentType: req.GetString("type", ""),
	}

	log.Debug().Int("page", params.Page).Int("limit", params.Limit).Msg("list_investments invoked")

	start := time.Now()
	res, err := ih.client.ListInvestments(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_investments failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list investments: %v", err)), nil
	}
	return payloadResult(res), nil
}

func (ih *InvestmentHandler) handleCreateInvestment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount, err := req.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	invType, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	asset, err := req.RequireString("asset")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := client.CreateInvestmentRequest{
		Amount:         amount,
		InvestmentType: invType,
		Asset:          asset,
		ExpectedReturn: optionalFloat(req, "expected_return"),
		Duration:       optionalInt(req, "duration"),
	}

	log.Debug().Float64("amount", amount).Str("asset", asset).Msg("create_investment invoked")

	start := time.Now()
	res, err := ih.client.CreateInvestment(ctx, body)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("create_investment failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to create investment: %v", err)), nil
	}
	return payloadResult(res), nil
}
