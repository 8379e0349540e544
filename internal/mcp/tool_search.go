package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerSearchTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(searchTool(), handleSearch(hctx))
}

func searchTool() mcp.Tool {
	return mcp.NewTool("ctx_search",
		mcp.WithDescription("Search codebase for text, symbol definitions, or function callers. Use symbol for precise definition matching. Use caller to find all call sites of a function (AST-based, impossible with grep)."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithBoolean("symbol",
			mcp.Description("Search for symbol definitions only (not usage)"),
		),
		mcp.WithBoolean("caller",
			mcp.Description("Find callers of a function (AST-based)"),
		),
		mcp.WithNumber("context",
			mcp.Description("Lines of context to show around matches"),
		),
	)
}

func handleSearch(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		args := []string{"search", "--json"}
		if req.GetBool("symbol", false) {
			args = append(args, "--symbol")
		}
		if req.GetBool("caller", false) {
			args = append(args, "--caller")
		}
		if lines := req.GetInt("context", 0); lines > 0 {
			args = append(args, "-C", strconv.Itoa(lines))
		}
		args = append(args, query)

		return toolResult(hctx.Runner.Run(ctx, args...))
	}
}
