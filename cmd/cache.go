package cmd

import (
	"github.com/huangsam/orderpulse/core"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/spf13/cobra"
)

// cacheCmd focused on the response cache.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the response cache",
	Long: `Inspect the cache that sits in front of the analytics service.

Responses are cached per endpoint and query for --cache-ttl, and concurrent
requests for the same data share one call. The cache lives in memory and
is discarded when the process exits.

Subcommands:
  status - Load the views once and show cache statistics`,
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display response cache statistics",
	Long: `Load the selected views through the response cache, then show what it holds.

Displays:
- Backend and time to live
- Number of cached responses and their age span
- Hits, misses and shared in-flight calls

Examples:
  orderpulse cache status
  orderpulse cache status --views trend,orders --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCacheStatus(rootCtx, cfg, client, fetcher); err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
	},
}
