package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
)

// newTestCmd returns a throwaway command with captured output and the
// flags every real command inherits from root.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().Bool("json", false, "")
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}
