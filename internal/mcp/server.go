// Package mcp exposes the ctx CLI as MCP tools.
//
// Each tool is one file: the descriptor (name, description, input schema)
// and the handler that maps arguments to a backend argv. Handlers never
// parse backend output; stdout flows through as opaque text.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with all ctx tools registered.
func NewServer(hctx *HandlerContext) *server.MCPServer {
	s := server.NewMCPServer("ctx", hctx.Version,
		server.WithToolCapabilities(false),
	)

	registerStatusTool(s, hctx)
	registerMapTool(s, hctx)
	registerSummarizeTool(s, hctx)
	registerSearchTool(s, hctx)
	registerRelatedTool(s, hctx)
	registerDiffContextTool(s, hctx)
	registerSchemaTool(s, hctx)
	registerVersionTool(s, hctx)
	registerCapabilitiesTool(s, hctx)

	return s
}

// Catalog returns the static tool descriptors in registration order.
// Used by `ctx-mcp tools` so the CLI listing and the served catalog
// cannot drift apart.
func Catalog() []mcp.Tool {
	return []mcp.Tool{
		statusTool(),
		mapTool(),
		summarizeTool(),
		searchTool(),
		relatedTool(),
		diffContextTool(),
		schemaTool(),
		versionTool(),
		capabilitiesTool(),
	}
}
