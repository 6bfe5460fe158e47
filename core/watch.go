package core

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/logger"
	"github.com/huangsam/orderpulse/schema"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RenderFunc receives each refreshed dashboard.
type RenderFunc func(result schema.DashboardResult, duration time.Duration) error

// Watcher re-renders the dashboard on a cron schedule until its context ends.
type Watcher struct {
	cron   *cron.Cron
	cfg    *contract.Config
	client contract.AnalyticsClient
	render RenderFunc
	runs   atomic.Int64
}

// NewWatcher creates a Watcher. Overlapping refreshes are skipped, not queued.
func NewWatcher(cfg *contract.Config, client contract.AnalyticsClient, render RenderFunc) *Watcher {
	return &Watcher{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		cfg:    cfg,
		client: client,
		render: render,
	}
}

// Runs returns the number of completed refreshes.
func (w *Watcher) Runs() int64 {
	return w.runs.Load()
}

// RunOnce loads and renders the dashboard a single time.
func (w *Watcher) RunOnce(ctx context.Context) error {
	start := time.Now()
	result := GetDashboard(ctx, w.cfg, w.client)
	if err := w.render(result, time.Since(start)); err != nil {
		return err
	}
	logger.DashboardRefreshes.Inc()
	n := w.runs.Add(1)
	logger.WithContext(ctx).Debug("dashboard refreshed",
		zap.Int64("run", n),
		zap.Int("failed_sections", result.FailedCount()),
	)
	return nil
}

// Run renders immediately, then on every tick of the schedule, and returns
// once ctx is done and the running refresh, if any, has finished.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.RunOnce(ctx); err != nil {
		return err
	}
	if _, err := w.cron.AddFunc(w.cfg.Schedule, func() {
		if err := w.RunOnce(ctx); err != nil {
			contract.LogWarn("Cannot refresh dashboard", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid schedule '%s': %w", w.cfg.Schedule, err)
	}

	w.cron.Start()
	<-ctx.Done()
	<-w.cron.Stop().Done()
	return nil
}
