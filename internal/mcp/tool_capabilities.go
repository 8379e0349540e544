package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerCapabilitiesTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(capabilitiesTool(), handleCapabilities(hctx))
}

func capabilitiesTool() mcp.Tool {
	return mcp.NewTool("ctx_capabilities",
		mcp.WithDescription("Get the full ctx capability manifest as JSON: every command, flag, and output format the backend supports. Intended for agent self-discovery."),
	)
}

func handleCapabilities(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolResult(hctx.Runner.Run(ctx, "--capabilities"))
	}
}
