package cmd

import (
	"github.com/huangsam/orderpulse/core"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/spf13/cobra"
)

// statusCmd shows the order status overview.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show order counts per status.",
	Long: `Show how many sales orders sit in each order status and their share of the total.

Examples:
  # Show the status overview
  orderpulse status

  # Export the overview for a spreadsheet
  orderpulse status --output csv --output-file status.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStatus(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot show order status overview", err)
		}
	},
}

// filtersCmd lists the filter options.
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the values available for every filter.",
	Long: `List the distinct branches, areas, customers, product classes and salespeople
known to the analytics service. Use them with --branch, --area, --customer,
--product-class and --salesperson.

Examples:
  orderpulse filters
  orderpulse filters --output yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFilters(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot list filter options", err)
		}
	},
}

// trendCmd shows the monthly order quantity trend.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the monthly order quantity trend and its KPIs.",
	Long: `Show the monthly order quantity for the selected filters together with
the average, the total change and the average period change.

--range narrows the window by percentage of the series length, the same way
dragging the brush of a chart would.

Examples:
  # Whole series
  orderpulse trend

  # Second half of the series for one branch
  orderpulse trend --branch North --range 50,100

  # Archive the points as parquet
  orderpulse trend --output parquet --output-file trend.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot show order trend", err)
		}
	},
}

// ordersCmd shows one page of order lines.
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show a page of sales order lines.",
	Long: `Show one page of sales order lines with their shipping state.

A line is Completed when everything ordered has shipped, Back Order when some
quantity is back ordered, and In Progress otherwise.

Examples:
  orderpulse orders --page 2 --per-page 25
  orderpulse orders --customer C042 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOrders(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot show order details", err)
		}
	},
}

// stockCmd shows the top stock items.
var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Show the most ordered stock items.",
	Long: `Show the most ordered stock items with their stock level and supplier.

Examples:
  orderpulse stock

  # Expand the price history of one item
  orderpulse stock --item A100`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStock(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot show top stock items", err)
		}
	},
}

// classesCmd shows the product-class distribution.
var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Show the order distribution per product class.",
	Long: `Show the order value and share of every product class.

Examples:
  orderpulse classes
  orderpulse classes --precision 1 --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteClasses(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot show product class distribution", err)
		}
	},
}
