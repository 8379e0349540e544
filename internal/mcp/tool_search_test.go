package mcp

import (
	"strings"
	"testing"
)

func TestSearchToolRequiresQuery(t *testing.T) {
	r := okRunner("{}")
	handler := handleSearch(testContext(r))

	result := callTool(t, handler, nil)

	errText := resultError(t, result)
	if !strings.Contains(errText, "query is required") {
		t.Errorf("expected 'query is required' error, got: %s", errText)
	}
}

func TestSearchToolQueryOnly(t *testing.T) {
	r := okRunner("{}")
	handler := handleSearch(testContext(r))

	callTool(t, handler, map[string]any{"query": "parse header"})

	wantArgv(t, r, "search", "--json", "parse header")
}

func TestSearchToolAllFlags(t *testing.T) {
	r := okRunner("{}")
	handler := handleSearch(testContext(r))

	callTool(t, handler, map[string]any{
		"query":   "HandleRequest",
		"symbol":  true,
		"caller":  true,
		"context": float64(5),
	})

	wantArgv(t, r, "search", "--json", "--symbol", "--caller", "-C", "5", "HandleRequest")
}

func TestSearchToolQueryIsLastArg(t *testing.T) {
	// A query starting with a dash must not be swallowed by flag parsing
	// on the adapter side; it is appended verbatim after all flags.
	r := okRunner("{}")
	handler := handleSearch(testContext(r))

	callTool(t, handler, map[string]any{"query": "-C", "symbol": true})

	wantArgv(t, r, "search", "--json", "--symbol", "-C")
}
