package core

import (
	"context"

	"github.com/huangsam/orderpulse/core/algo"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/logger"
	"github.com/huangsam/orderpulse/schema"
	"go.uber.org/zap"
)

// GetStatusResults fetches the order status overview and totals the counts.
func GetStatusResults(ctx context.Context, client contract.AnalyticsClient) (schema.StatusOverviewResult, error) {
	statuses, err := client.OrderStatusOverview(ctx)
	if err != nil {
		return schema.StatusOverviewResult{}, err
	}
	if statuses == nil {
		statuses = []schema.OrderStatus{}
	}
	var total float64
	for _, s := range statuses {
		total += s.Count
	}
	return schema.StatusOverviewResult{Statuses: statuses, TotalCount: total}, nil
}

// GetFilterOptions fetches the filter options and arranges them by category.
func GetFilterOptions(ctx context.Context, client contract.AnalyticsClient) (schema.FilterOptionsResult, error) {
	opts, err := client.FilterOptions(ctx)
	if err != nil {
		return schema.FilterOptionsResult{}, err
	}
	return schema.FilterOptionsResult{Categories: opts.Categories()}, nil
}

// GetTrendResults fetches the trend for the configured filters and runs the
// metrics engine over the configured visible range.
func GetTrendResults(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) (schema.TrendResult, error) {
	raw, err := client.OrderTrend(ctx, cfg.Filters)
	if err != nil {
		return schema.TrendResult{}, err
	}
	series := algo.NormalizeSeries(raw)
	if excluded := len(raw) - len(series); excluded > 0 {
		logger.WithContext(ctx).Debug("trend records excluded", zap.Int("excluded", excluded), zap.Int("received", len(raw)))
	}
	metrics := algo.ComputeSeriesMetrics(series, cfg.Range)
	return schema.TrendResult{
		Filters:      cfg.Filters,
		TrendMetrics: metrics,
		DateRange:    schema.DateRangeLabel(metrics.Visible),
		Excluded:     len(raw) - len(series),
	}, nil
}

// GetOrderDetails fetches one page of order lines and derives each line's
// state together with the pagination footer.
func GetOrderDetails(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) (schema.OrderDetailsResult, error) {
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = schema.DefaultPerPage
	}
	page, err := client.OrderDetails(ctx, cfg.Filters, max(cfg.Page, 1), perPage)
	if err != nil {
		return schema.OrderDetailsResult{}, err
	}

	pagination := page.Pagination
	if pagination.Page < 1 {
		pagination.Page = max(cfg.Page, 1)
	}
	orders := make([]schema.EnrichedOrder, 0, len(page.Data))
	for _, o := range page.Data {
		orders = append(orders, schema.EnrichedOrder{OrderDetail: o, State: algo.OrderStateFor(o)})
	}
	from, to := algo.ShowingRange(pagination.Page, perPage, pagination.TotalCount)
	return schema.OrderDetailsResult{
		Filters:     cfg.Filters,
		Orders:      orders,
		Pagination:  pagination,
		PerPage:     perPage,
		ShowingFrom: from,
		ShowingTo:   to,
		Pages:       algo.PageItems(pagination.Page, pagination.TotalPages),
	}, nil
}

// GetStockResults fetches the top stock items, classifies their stock level and
// orders each price history newest first. cfg.Item selects the item whose
// history is expanded.
func GetStockResults(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) (schema.StockResult, error) {
	items, err := client.TopStockItems(ctx)
	if err != nil {
		return schema.StockResult{}, err
	}
	enriched := make([]schema.EnrichedStockItem, 0, len(items))
	for _, item := range items {
		e := schema.EnrichedStockItem{
			StockItem:    item,
			Level:        algo.StockLevelFor(item.TotalQtyOnHand, item.TotalOrderQty),
			PriceEntries: algo.SplitPriceDetails(item.PriceDetails),
		}
		e.PriceHistory = algo.SortedPriceHistory(item.PriceHistory)
		enriched = append(enriched, e)
	}
	return schema.StockResult{
		Summary: algo.SummarizeStock(items),
		Items:   enriched,
		Focus:   cfg.Item,
	}, nil
}

// GetClassResults fetches the product-class distribution and totals it.
func GetClassResults(ctx context.Context, client contract.AnalyticsClient) (schema.ClassDistributionResult, error) {
	dist, err := client.ProductClassDistribution(ctx)
	if err != nil {
		return schema.ClassDistributionResult{}, err
	}
	classes := dist.Data
	if classes == nil {
		classes = []schema.ProductClassShare{}
	}
	var total float64
	for _, c := range classes {
		total += c.Value
	}
	return schema.ClassDistributionResult{
		Classes:         classes,
		TotalOrders:     total,
		ClassCount:      len(classes),
		TotalPercentage: dist.TotalPercentage.Float64(),
	}, nil
}
