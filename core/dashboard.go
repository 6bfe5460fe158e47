package core

import (
	"context"
	"time"

	"github.com/huangsam/orderpulse/internal/apiclient"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/logger"
	"github.com/huangsam/orderpulse/schema"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentViews caps how many views hit the analytics service at once.
const maxConcurrentViews = 3

// GetDashboard loads the configured views concurrently, at most
// maxConcurrentViews at a time. A view that fails is recorded as an error
// section; it never aborts the other views.
func GetDashboard(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) schema.DashboardResult {
	views := cfg.Views
	if len(views) == 0 {
		views = schema.AllViews
	}
	sections := make([]schema.DashboardSection, len(views))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentViews)
	for i, view := range views {
		g.Go(func() error {
			sections[i] = loadSection(gctx, cfg, client, view)
			return nil
		})
	}
	_ = g.Wait() // sections carry their own errors

	return schema.DashboardResult{GeneratedAt: time.Now(), Sections: sections}
}

// loadSection fetches a single view and wraps the outcome in a section.
func loadSection(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient, view schema.View) schema.DashboardSection {
	section := schema.DashboardSection{View: view}
	var err error
	switch view {
	case schema.StatusView:
		var r schema.StatusOverviewResult
		if r, err = GetStatusResults(ctx, client); err == nil {
			section.Status = &r
		}
	case schema.FiltersView:
		var r schema.FilterOptionsResult
		if r, err = GetFilterOptions(ctx, client); err == nil {
			section.Filters = &r
		}
	case schema.TrendView:
		var r schema.TrendResult
		if r, err = GetTrendResults(ctx, cfg, client); err == nil {
			section.Trend = &r
		}
	case schema.OrdersView:
		var r schema.OrderDetailsResult
		if r, err = GetOrderDetails(ctx, cfg, client); err == nil {
			section.Orders = &r
		}
	case schema.StockView:
		var r schema.StockResult
		if r, err = GetStockResults(ctx, cfg, client); err == nil {
			section.Stock = &r
		}
	case schema.ClassesView:
		var r schema.ClassDistributionResult
		if r, err = GetClassResults(ctx, client); err == nil {
			section.Classes = &r
		}
	default:
		section.Error = "unknown view " + string(view)
		return section
	}
	if err != nil {
		logger.WithContext(ctx).Warn("dashboard section failed", zap.String("view", string(view)), zap.Error(err))
		logger.SectionFailures.WithLabelValues(string(view)).Inc()
		section.Error = apiclient.Summary(err)
	}
	return section
}
