package cmd

import (
	mcppkg "github.com/lugassawan/ctx-mcp/internal/mcp"
	"github.com/lugassawan/ctx-mcp/internal/output"
	"github.com/lugassawan/ctx-mcp/internal/termcolor"
	"github.com/spf13/cobra"
)

// toolItem is the JSON shape of one catalog entry.
type toolItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func init() {
	toolsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools exposed by the server",
	Long:  "Prints the static tool catalog the MCP server advertises, without starting the server or invoking ctx.",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := mcppkg.Catalog()
		items := make([]toolItem, 0, len(catalog))
		for _, tool := range catalog {
			items = append(items, toolItem{Name: tool.Name, Description: tool.Description})
		}

		if output.IsJSON(cmd) {
			return output.WriteJSON(cmd.OutOrStdout(), version, "tools", items)
		}

		p := painter(cmd)
		table := termcolor.NewTable(2)
		for _, item := range items {
			table.AddRow(p.Paint(item.Name, termcolor.Cyan), item.Description)
		}
		table.Render(cmd.OutOrStdout())
		return nil
	},
}
