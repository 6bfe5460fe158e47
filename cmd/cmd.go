// Package cmd defines the command-line interface for orderpulse.
package cmd

import (
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("base-url", contract.DefaultBaseURL, "Base URL of the sales-order analytics service")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Per-request timeout (e.g. 30s)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.MemoryBackend), "Response cache backend: memory or none")
	rootCmd.PersistentFlags().String("cache-ttl", contract.DefaultCacheTTL.String(), "How long cached responses stay fresh (0 disables storage)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Diagnostic log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("env", "", "Runtime environment (development enables the console log encoder)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	// Filters apply to every command that shows trend or order data
	rootCmd.PersistentFlags().String("branch", "", "Filter by branch")
	rootCmd.PersistentFlags().String("area", "", "Filter by sales area")
	rootCmd.PersistentFlags().String("customer", "", "Filter by customer ID")
	rootCmd.PersistentFlags().String("product-class", "", "Filter by product class")
	rootCmd.PersistentFlags().String("salesperson", "", "Filter by salesperson ID")

	// View options are shared so that dashboard and watch can honor them too
	rootCmd.PersistentFlags().String("range", contract.DefaultRange, "Visible trend window as 'start,end' percentages")
	rootCmd.PersistentFlags().Int("page", 1, "Order details page number")
	rootCmd.PersistentFlags().Int("per-page", schema.DefaultPerPage, "Order lines per page")
	rootCmd.PersistentFlags().String("item", "", "Stock code whose price history is expanded")
	rootCmd.PersistentFlags().String("views", "", "Comma-separated dashboard views: status, filters, trend, orders, stock, classes (default all)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of watchCmd to Viper
	watchCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while watching (e.g. ':9090')")
	watchCmd.Flags().String("schedule", contract.DefaultSchedule, "Cron schedule for refreshes (e.g. '@every 1m' or '*/5 * * * *')")
	if err := viper.BindPFlags(watchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding watch flags", err)
	}
}
