package cmd

import (
	"github.com/huangsam/orderpulse/core"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd downloads the comprehensive order report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Download the comprehensive order report.",
	Long: `Download the spreadsheet report generated by the analytics service.

The report is saved under the file name announced by the service in the
current directory, or to --output-file when given. A failed download never
leaves a partial file behind.

Examples:
  orderpulse report
  orderpulse report --output-file reports/orders.xlsx`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot download report", err)
		}
	},
}
