package main

import (
	"fmt"
	"os"

	"github.com/lugassawan/ctx-mcp/cmd"
	"github.com/lugassawan/ctx-mcp/internal/output"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if cmd.IsJSONMode() {
			_ = output.WriteJSONError(os.Stdout, cmd.Version(), cmd.CommandName(), err.Error(), output.ErrGeneral)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
