// Package outwriter has output and writer logic.
package outwriter

import (
	"io"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteStatus prints the status overview using the configured output format.
func (ow *OutWriter) WriteStatus(result schema.StatusOverviewResult, cfg *contract.Config, duration time.Duration) error {
	return PrintStatusResults(result, cfg, duration)
}

// WriteFilters prints the filter options using the configured output format.
func (ow *OutWriter) WriteFilters(result schema.FilterOptionsResult, cfg *contract.Config, duration time.Duration) error {
	return PrintFilterOptions(result, cfg, duration)
}

// WriteTrend prints the trend analysis using the configured output format.
func (ow *OutWriter) WriteTrend(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTrendResults(result, cfg, duration)
}

// WriteOrders prints the order details using the configured output format.
func (ow *OutWriter) WriteOrders(result schema.OrderDetailsResult, cfg *contract.Config, duration time.Duration) error {
	return PrintOrderDetails(result, cfg, duration)
}

// WriteStock prints the top stock items using the configured output format.
func (ow *OutWriter) WriteStock(result schema.StockResult, cfg *contract.Config, duration time.Duration) error {
	return PrintStockResults(result, cfg, duration)
}

// WriteClasses prints the product-class distribution using the configured output format.
func (ow *OutWriter) WriteClasses(result schema.ClassDistributionResult, cfg *contract.Config, duration time.Duration) error {
	return PrintClassResults(result, cfg, duration)
}

// WriteDashboard prints every dashboard section using the configured output format.
func (ow *OutWriter) WriteDashboard(result schema.DashboardResult, cfg *contract.Config, duration time.Duration) error {
	return PrintDashboard(result, cfg, duration)
}

// WriteReport describes a saved report on w. The report itself already
// occupies the output file, so this never writes there.
func (ow *OutWriter) WriteReport(w io.Writer, result schema.ReportDownload, cfg *contract.Config, duration time.Duration) error {
	return WriteReportDownload(w, result, cfg, duration)
}

// WriteCacheStatus prints the response cache status using the configured output format.
func (ow *OutWriter) WriteCacheStatus(status schema.CacheStatus, cfg *contract.Config) error {
	return PrintCacheStatus(status, cfg)
}
