package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lugassawan/ctx-mcp/internal/termcolor"
	"github.com/spf13/cobra"
)

func TestExecuteCapturesCommandState(t *testing.T) {
	origCmd, origJSON := currentCommand, jsonMode
	t.Cleanup(func() { currentCommand, jsonMode = origCmd, origJSON })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"tools", "--json"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if CommandName() != "tools" {
		t.Errorf("CommandName() = %q, want tools", CommandName())
	}
	if !IsJSONMode() {
		t.Error("IsJSONMode() = false after --json invocation")
	}
}

func TestPainterHonorsNoColor(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("no-color", false, "")
	if err := cmd.Flags().Set("no-color", "true"); err != nil {
		t.Fatal(err)
	}

	p := painter(cmd)
	if got := p.Paint("x", termcolor.Cyan); got != "x" {
		t.Errorf("painter with --no-color produced %q, want plain", got)
	}
}

func TestRootHelpListsCommands(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := buf.String()
	for _, name := range []string{"serve", "tools", "version"} {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing %q command", name)
		}
	}
}
