package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerSummarizeTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(summarizeTool(), handleSummarize(hctx))
}

func summarizeTool() mcp.Tool {
	return mcp.NewTool("ctx_summarize",
		mcp.WithDescription("Extract symbols (functions, classes, etc.) from files using tree-sitter AST parsing. Much faster than reading entire files when you just need structure."),
		mcp.WithArray("paths",
			mcp.Description("File or directory paths to summarize"),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithBoolean("skeleton",
			mcp.Description("Show only function/class signatures"),
		),
		mcp.WithNumber("depth",
			mcp.Description("Maximum depth for directory summarization"),
		),
	)
}

func handleSummarize(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		paths := req.GetStringSlice("paths", nil)
		if len(paths) == 0 {
			return mcp.NewToolResultError("paths is required"), nil
		}

		args := []string{"summarize", "--json"}
		if req.GetBool("skeleton", false) {
			args = append(args, "--skeleton")
		}
		if depth := req.GetInt("depth", 0); depth > 0 {
			args = append(args, "--depth", strconv.Itoa(depth))
		}
		args = append(args, paths...)

		return toolResult(hctx.Runner.Run(ctx, args...))
	}
}
