package mcp

import (
	"fmt"
	"strings"

	"github.com/lugassawan/ctx-mcp/internal/backend"
	"github.com/mark3labs/mcp-go/mcp"
)

const errBackendMissing = "ctx not found in PATH. Please install ctx first."

// toolResult maps a backend outcome to an MCP tool result. Successful
// invocations pass stdout through untouched; failures become error results
// so the session stays alive.
func toolResult(out backend.Outcome) (*mcp.CallToolResult, error) {
	switch {
	case out.NotFound():
		return mcp.NewToolResultError(errBackendMissing), nil
	case out.StartErr != nil:
		return mcp.NewToolResultError(fmt.Sprintf("failed to start ctx: %v", out.StartErr)), nil
	case out.TimedOut:
		return mcp.NewToolResultError(fmt.Sprintf("Command timed out after %d seconds", int(out.Timeout.Seconds()))), nil
	case out.ExitCode != 0:
		msg := strings.TrimSpace(out.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("Command failed with exit code %d", out.ExitCode)
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error: %s\n\nOutput: %s", msg, out.Stdout)), nil
	}
	return mcp.NewToolResultText(out.Stdout), nil
}
