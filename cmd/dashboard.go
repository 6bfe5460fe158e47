package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/orderpulse/core"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/spf13/cobra"
)

// dashboardCmd shows several views at once.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show every view in one report.",
	Long: `Load the selected views concurrently and print them one after another.

A view that cannot be loaded shows an error line in its place; the other
views are still printed.

Examples:
  orderpulse dashboard
  orderpulse dashboard --views status,trend,classes --branch North`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDashboard(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot show dashboard", err)
		}
	},
}

// watchCmd re-renders the dashboard on a schedule.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh the dashboard on a schedule.",
	Long: `Print the dashboard now and again on every tick of --schedule until interrupted.

Responses are served from the response cache while they are fresh, so pick a
--cache-ttl shorter than the schedule interval to see new data on every tick.

Examples:
  orderpulse watch --schedule "@every 1m" --cache-ttl 30s
  orderpulse watch --views trend --schedule "0 * * * *"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := core.ExecuteWatch(ctx, cfg, client, fetcher); err != nil {
			contract.LogFatal("Cannot watch dashboard", err)
		}
	},
}
