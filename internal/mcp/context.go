package mcp

import (
	"github.com/lugassawan/ctx-mcp/internal/backend"
	"github.com/lugassawan/ctx-mcp/internal/config"
)

// HandlerContext holds shared dependencies for MCP tool handlers.
// Created once in cmd/serve.go, captured by handler closures.
type HandlerContext struct {
	Runner  backend.Runner
	Config  *config.Config
	Version string
}
