package cmd

import (
	"fmt"

	"github.com/lugassawan/ctx-mcp/internal/backend"
	"github.com/lugassawan/ctx-mcp/internal/config"
	mcppkg "github.com/lugassawan/ctx-mcp/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server for AI tool integration",
	Long: `Starts a Model Context Protocol (MCP) server over stdio.

AI tools like Claude Code and Cursor can connect to this server to discover
and invoke ctx commands with structured parameters. All analysis happens in
the ctx binary; this server only translates tool calls into invocations.

To configure in Claude Code, add to .claude/settings.json:
  {"mcpServers": {"ctx": {"command": "ctx-mcp", "args": ["serve"]}}}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(".")
		if err != nil {
			return err
		}

		hctx := &mcppkg.HandlerContext{
			Runner:  newRunner(cfg),
			Config:  cfg,
			Version: version,
		}

		// stdout carries the protocol; startup notices go to stderr.
		fmt.Fprintf(cmd.ErrOrStderr(), "ctx-mcp %s serving MCP over stdio (backend: %s, timeout: %ds)\n",
			version, cfg.Backend, cfg.TimeoutSecs)

		s := mcppkg.NewServer(hctx)
		return server.ServeStdio(s)
	},
}

// newRunner builds the production backend runner from config.
func newRunner(cfg *config.Config) backend.Runner {
	return &backend.ExecRunner{
		Bin:       cfg.Backend,
		Dir:       cfg.WorkDir,
		Timeout:   cfg.Timeout(),
		ExtraArgs: cfg.ExtraArgs,
	}
}
