package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at release time via
// -ldflags "-X github.com/lugassawan/ctx-mcp/cmd.version=...".
var version = "dev"

// Version returns the ctx-mcp version string.
func Version() string {
	return version
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print ctx-mcp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ctx-mcp %s\n", version)
	},
}
