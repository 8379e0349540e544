package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerVersionTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(versionTool(), handleVersion(hctx))
}

func versionTool() mcp.Tool {
	return mcp.NewTool("ctx_version",
		mcp.WithDescription("Get ctx version and capabilities including supported languages, commands, and features."),
	)
}

func handleVersion(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolResult(hctx.Runner.Run(ctx, "version", "--json"))
	}
}
