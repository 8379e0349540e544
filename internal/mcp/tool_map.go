package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerMapTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(mapTool(), handleMap(hctx))
}

func mapTool() mcp.Tool {
	return mcp.NewTool("ctx_map",
		mcp.WithDescription("Show project directory structure with file counts. Better than ls/find for understanding codebase layout."),
		mcp.WithString("path",
			mcp.Description("Path to map (default: current directory)"),
		),
		mcp.WithNumber("depth",
			mcp.Description("Maximum depth to traverse"),
		),
	)
}

func handleMap(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := []string{"map", "--json"}
		if path := req.GetString("path", ""); path != "" {
			args = append(args, path)
		}
		if depth := req.GetInt("depth", 0); depth > 0 {
			args = append(args, "--depth", strconv.Itoa(depth))
		}
		return toolResult(hctx.Runner.Run(ctx, args...))
	}
}
