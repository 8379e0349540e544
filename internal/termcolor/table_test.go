package termcolor

import (
	"bytes"
	"strings"
	"testing"
)

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"plain", 5},
		{"", 0},
		{"\033[36mcyan\033[0m", 4},
		{"\033[1m\033[36mx\033[0m", 1},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.in); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTableAlignsColoredCells(t *testing.T) {
	tbl := NewTable(2)
	tbl.AddRow("\033[36mctx_map\033[0m", "Show structure")
	tbl.AddRow("ctx_status", "Show status")

	var buf bytes.Buffer
	tbl.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Second columns must start at the same visible offset.
	first := strings.Index(lines[0], "Show structure")
	second := strings.Index(lines[1], "Show status")
	ansiOverhead := len("\033[36m") + len("\033[0m")
	if first-ansiOverhead != second {
		t.Errorf("columns misaligned: %d (minus ANSI) vs %d", first-ansiOverhead, second)
	}
}

func TestTableEmptyRendersNothing(t *testing.T) {
	var buf bytes.Buffer
	NewTable(2).Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("empty table rendered %q", buf.String())
	}
}
