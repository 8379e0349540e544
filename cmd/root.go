package cmd

import (
	"github.com/joho/godotenv"
	"github.com/lugassawan/ctx-mcp/internal/output"
	"github.com/lugassawan/ctx-mcp/internal/termcolor"
	"github.com/spf13/cobra"
)

// State captured for main.go's error reporting.
var (
	currentCommand string
	jsonMode       bool
)

var rootCmd = &cobra.Command{
	Use:          "ctx-mcp",
	Short:        "MCP server for the ctx context tool",
	Long:         "ctx-mcp bridges the ctx codebase-context CLI to MCP clients. It exposes ctx commands as MCP tools over stdio and passes their JSON output through untouched.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Best-effort: MCP client configs often cannot set per-server
		// environment variables, so a local .env stands in.
		_ = godotenv.Load()

		currentCommand = cmd.Name()
		jsonMode = output.IsJSON(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func Execute() error {
	return rootCmd.Execute()
}

// IsJSONMode reports whether the invoked command ran with --json.
func IsJSONMode() bool {
	return jsonMode
}

// CommandName returns the name of the invoked command.
func CommandName() string {
	return currentCommand
}

// painter builds a Painter honoring the inherited --no-color flag.
func painter(cmd *cobra.Command) *termcolor.Painter {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return termcolor.NewPainter(noColor)
}
