package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerStatusTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(statusTool(), handleStatus(hctx))
}

func statusTool() mcp.Tool {
	return mcp.NewTool("ctx_status",
		mcp.WithDescription("Get project status overview including git branch, recent commits, and hot directories. Use this first when exploring a new codebase."),
	)
}

func handleStatus(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolResult(hctx.Runner.Run(ctx, "status", "--json"))
	}
}
