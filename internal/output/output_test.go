package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, "1.2.3", "tools", []string{"ctx_status"})
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env.Version != "1.2.3" || env.Command != "tools" {
		t.Errorf("envelope metadata = %q/%q, want 1.2.3/tools", env.Version, env.Command)
	}
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONError(&buf, "1.2.3", "serve", "boom", ErrConfig)
	if err != nil {
		t.Fatalf("WriteJSONError: %v", err)
	}

	var env ErrorEnvelope
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if env.Error != "boom" || env.Code != ErrConfig {
		t.Errorf("error envelope = %q/%q, want boom/%s", env.Error, env.Code, ErrConfig)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented output")
	}
}

func TestIsJSON(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	if IsJSON(cmd) {
		t.Error("IsJSON should be false when the flag is not registered")
	}

	cmd.Flags().Bool("json", false, "")
	if IsJSON(cmd) {
		t.Error("IsJSON should be false by default")
	}

	if err := cmd.Flags().Set("json", "true"); err != nil {
		t.Fatal(err)
	}
	if !IsJSON(cmd) {
		t.Error("IsJSON should be true after setting the flag")
	}
}

func TestIsJSONInherited(t *testing.T) {
	parent := &cobra.Command{Use: "parent"}
	parent.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	parent.AddCommand(child)

	parent.SetArgs([]string{"child", "--json"})
	if err := parent.Execute(); err != nil {
		t.Fatal(err)
	}
	if !IsJSON(child) {
		t.Error("IsJSON should see the inherited persistent flag")
	}
}
