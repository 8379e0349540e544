package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerRelatedTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(relatedTool(), handleRelated(hctx))
}

func relatedTool() mcp.Tool {
	return mcp.NewTool("ctx_related",
		mcp.WithDescription("Find files related to a given file through imports, reverse imports, co-changes in git history, and associated test files."),
		mcp.WithString("file",
			mcp.Description("File path to find relations for"),
			mcp.Required(),
		),
	)
}

func handleRelated(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := req.GetString("file", "")
		if file == "" {
			return mcp.NewToolResultError("file is required"), nil
		}
		return toolResult(hctx.Runner.Run(ctx, "related", "--json", file))
	}
}
