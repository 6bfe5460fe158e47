// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"io"

	"github.com/huangsam/orderpulse/schema"
)

// AnalyticsClient defines the read-only operations of the sales-order analytics service.
// This allows the views to be tested without a running service.
type AnalyticsClient interface {
	// OrderStatusOverview returns the count and share of orders per status.
	OrderStatusOverview(ctx context.Context) ([]schema.OrderStatus, error)

	// FilterOptions returns the distinct values of every filter category.
	FilterOptions(ctx context.Context) (schema.FilterOptions, error)

	// OrderTrend returns the raw monthly order quantities for the filters.
	OrderTrend(ctx context.Context, filters schema.Filters) ([]schema.RawTrendRecord, error)

	// OrderDetails returns one page of order lines for the filters.
	OrderDetails(ctx context.Context, filters schema.Filters, page, perPage int) (schema.OrderDetailPage, error)

	// TopStockItems returns the most ordered stock items with their price history.
	TopStockItems(ctx context.Context) ([]schema.StockItem, error)

	// ProductClassDistribution returns the order share per product class.
	ProductClassDistribution(ctx context.Context) (schema.ProductClassDistribution, error)

	// DownloadReport streams the static report into w and describes what was received.
	DownloadReport(ctx context.Context, w io.Writer) (schema.ReportDownload, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResponseStore() CacheStore
}

// CacheStore defines the interface for response cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Clear() error
	Close() error
}
