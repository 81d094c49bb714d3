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

// CryptoOrderHandler exposes crypto order tools.
type CryptoOrderHandler struct {
	client *client.Client
}

func NewCryptoOrderHandler(c *client.Client) *CryptoOrderHandler {
	return &CryptoOrderHandler{client: c}
}

func (ch *CryptoOrderHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_crypto_orders", append([]mcp.ToolOption{
		mcp.WithDescription("List crypto orders, optionally filtered by side, status or symbol"),
		mcp.WithString("order_type", mcp.Description("buy or sell"), mcp.Enum("buy", "sell")),
		mcp.WithString("status", mcp.Description("Order status filter")),
		mcp.WithString("crypto", mcp.Description("Cryptocurrency symbol, e.g. BTC")),
	}, pageOptions()...)...)

	create := mcp.NewTool("create_crypto_order",
		mcp.WithDescription("Place a crypto order; omit price for a market order"),
		mcp.WithString("crypto", mcp.Required(), mcp.Description("Cryptocurrency symbol, e.g. BTC")),
		mcp.WithString("order_type", mcp.Required(), mcp.Description("buy or sell"), mcp.Enum("buy", "sell")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Quantity")),
		mcp.WithNumber("price", mcp.Description("Optional limit price")),
	)

	s.AddTool(list, ch.handleListCryptoOrders)
	s.AddTool(create, ch.handleCreateCryptoOrder)
	return nil
}

func (ch *CryptoOrderHandler) handleListCryptoOrders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := client.ListCryptoOrdersParams{
		Page:      req.GetInt("page", client.DefaultPage),
		Limit:     req.GetInt("limit", client.DefaultLimit),
		OrderType: req.GetString("order_type", ""),
		Status:    req.GetString("status", ""),
		Crypto:    req.GetString("crypto", ""),
	}

	log.Debug().Int("page", params.Page).Int("limit", params.Limit).Str("crypto", params.Crypto).Msg("list_crypto_orders invoked")

	start := time.Now()
	res, err := ch.client.ListCryptoOrders(ctx, params)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_crypto_orders failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list crypto orders: %v", err)), nil
	}
	return payloadResult(res), nil
}

func (ch *CryptoOrderHandler) handleCreateCryptoOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crypto, err := req.RequireString("crypto")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	side, err := req.RequireString("order_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	amount, err := req.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := client.CreateCryptoOrderRequest{
		Crypto:    crypto,
		OrderType: side,
		Amount:    amount,
		Price:     optionalFloat(req, "price"),
	}

	log.Debug().Str("crypto", crypto).Str("order_type", side).Float64("amount", amount).Msg("create_crypto_order invoked")

	start := time.Now()
	res, err := ch.client.CreateCryptoOrder(ctx, body)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("create_crypto_order failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to create crypto order: %v", err)), nil
	}
	return payloadResult(res), nil
}
