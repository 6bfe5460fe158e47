package cmd

import (
	"github.com/huangsam/orderpulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the OrderPulse MCP server",
	Long:    `Launch an MCP server on stdio that lets AI agents query the sales-order views via standard tools.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, client)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
