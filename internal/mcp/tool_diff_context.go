package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerDiffContextTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(diffContextTool(), handleDiffContext(hctx))
}

func diffContextTool() mcp.Tool {
	return mcp.NewTool("ctx_diff_context",
		mcp.WithDescription("Show git diff with expanded function context. Better than raw git diff for understanding what changed."),
		mcp.WithString("git_ref",
			mcp.Description("Git ref to diff against (default: uncommitted changes)"),
		),
	)
}

func handleDiffContext(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := []string{"diff-context", "--json"}
		if ref := req.GetString("git_ref", ""); ref != "" {
			args = append(args, ref)
		}
		return toolResult(hctx.Runner.Run(ctx, args...))
	}
}
