package handlers

import (
	"github.com/AlliediMpact/coinbox-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// payloadResult returns the unwrapped response payload as tool text.
func payloadResult(res *client.Result) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(res.Raw()))
}

func pageOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page", mcp.Description("Page number (default 1)")),
		mcp.WithNumber("limit", mcp.Description("Items per page (default 50)")),
	}
}

// optionalFloat returns a pointer only when key was supplied.
func optionalFloat(req mcp.CallToolRequest, key string) *float64 {
	if _, ok := req.GetArguments()[key]; !ok {
		return nil
	}
	return client.Ptr(req.GetFloat(key, 0))
}

func optionalInt(req mcp.CallToolRequest, key string) *int {
	if _, ok := req.GetArguments()[key]; !ok {
		return nil
	}
	return client.Ptr(req.GetInt(key, 0))
}
