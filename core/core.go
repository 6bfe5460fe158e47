// Package core has core logic for loading, deriving and rendering the sales-order views.
package core

import (
	"context"
	"os"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/iocache"
	"github.com/huangsam/orderpulse/internal/logger"
	"github.com/huangsam/orderpulse/internal/outwriter"
	"github.com/huangsam/orderpulse/schema"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ExecutorFunc defines the function signature for executing the different views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error

// ExecuteStatus loads the order status overview and prints it.
func ExecuteStatus(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	start := time.Now()
	result, err := GetStatusResults(ctx, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStatus(result, cfg, time.Since(start))
}

// ExecuteFilters loads the filter options and prints them.
func ExecuteFilters(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	start := time.Now()
	result, err := GetFilterOptions(ctx, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteFilters(result, cfg, time.Since(start))
}

// ExecuteTrend loads the monthly order trend and prints it with its KPIs.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	start := time.Now()
	result, err := GetTrendResults(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTrend(result, cfg, time.Since(start))
}

// ExecuteOrders loads one page of order lines and prints it.
func ExecuteOrders(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	start := time.Now()
	result, err := GetOrderDetails(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteOrders(result, cfg, time.Since(start))
}

// ExecuteStock loads the top stock items and prints them.
func ExecuteStock(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	start := time.Now()
	result, err := GetStockResults(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStock(result, cfg, time.Since(start))
}

// ExecuteClasses loads the product-class distribution and prints it.
func ExecuteClasses(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	start := time.Now()
	result, err := GetClassResults(ctx, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteClasses(result, cfg, time.Since(start))
}

// ExecuteDashboard loads every configured view and prints them together.
// Failed views are reported inside the dashboard, so this only fails on output errors.
func ExecuteDashboard(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	start := time.Now()
	result := GetDashboard(ctx, cfg, client)
	return outwriter.NewOutWriter().WriteDashboard(result, cfg, time.Since(start))
}

// ExecuteReport downloads the static report into the working directory
// (or cfg.OutputFile) and describes it on stdout.
func ExecuteReport(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	start := time.Now()
	result, err := DownloadReport(ctx, cfg, client, ".")
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(os.Stdout, result, cfg, time.Since(start))
}

// ExecuteWatch renders the dashboard now and again on every tick of
// cfg.Schedule until ctx is cancelled. With cfg.MetricsAddr set, Prometheus
// metrics are served for the lifetime of the watch, and a metrics server
// that cannot start or dies ends the watch with its error.
func ExecuteWatch(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient, fetcher *iocache.Fetcher) error {
	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		g.Go(func() error { return logger.ServeMetrics(gctx, cfg.MetricsAddr) })
		logger.WithContext(ctx).Info("serving metrics", zap.String("addr", cfg.MetricsAddr))
	}

	ow := outwriter.NewOutWriter()
	w := NewWatcher(cfg, client, func(result schema.DashboardResult, duration time.Duration) error {
		if err := ow.WriteDashboard(result, cfg, duration); err != nil {
			return err
		}
		recordCacheStatus(gctx, fetcher)
		return nil
	})
	g.Go(func() error { return w.Run(gctx) })

	return g.Wait()
}

// recordCacheStatus publishes the response cache counters as gauges.
func recordCacheStatus(ctx context.Context, fetcher *iocache.Fetcher) {
	status, err := fetcher.Status()
	if err != nil {
		logger.WithContext(ctx).Debug("cache status unavailable", zap.Error(err))
		return
	}
	logger.CacheEntries.Set(float64(status.TotalEntries))
	logger.CacheLookups.WithLabelValues("hit").Set(float64(status.Hits))
	logger.CacheLookups.WithLabelValues("miss").Set(float64(status.Misses))
	logger.CacheLookups.WithLabelValues("shared").Set(float64(status.Shared))
	logger.WithContext(ctx).Debug("response cache",
		zap.Int("entries", status.TotalEntries),
		zap.Int64("hits", status.Hits),
		zap.Int64("misses", status.Misses),
	)
}

// ExecuteCacheStatus warms the response cache by loading the configured views,
// then prints what the cache holds. The cache lives only as long as the process.
func ExecuteCacheStatus(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient, fetcher *iocache.Fetcher) error {
	result := GetDashboard(ctx, cfg, client)
	if failed := result.FailedCount(); failed > 0 {
		logger.WithContext(ctx).Warn("some views failed while warming the cache", zap.Int("failed", failed))
	}
	status, err := fetcher.Status()
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteCacheStatus(status, cfg)
}
