package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// schemaCommands are the backend commands with a published output schema.
var schemaCommands = []string{"status", "map", "summarize", "search", "related", "diff-context"}

func registerSchemaTool(s *server.MCPServer, hctx *HandlerContext) {
	s.AddTool(schemaTool(), handleSchema(hctx))
}

func schemaTool() mcp.Tool {
	return mcp.NewTool("ctx_schema",
		mcp.WithDescription("Get JSON schema for a command's output format. Useful for understanding output structure."),
		mcp.WithString("command",
			mcp.Description("Command to get schema for (status, map, summarize, search, related, diff-context)"),
			mcp.Required(),
			mcp.Enum(schemaCommands...),
		),
	)
}

func handleSchema(hctx *HandlerContext) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		command := req.GetString("command", "")
		if command == "" {
			return mcp.NewToolResultError("command is required"), nil
		}
		if !validSchemaCommand(command) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown command %q; valid commands: %s", command, strings.Join(schemaCommands, ", "))), nil
		}
		// schema already emits JSON; no --json flag.
		return toolResult(hctx.Runner.Run(ctx, "schema", command))
	}
}

func validSchemaCommand(command string) bool {
	for _, c := range schemaCommands {
		if c == command {
			return true
		}
	}
	return false
}
