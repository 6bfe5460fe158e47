package logger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the orderpulse metrics. Go runtime collectors are left out.
var Registry = prometheus.NewRegistry()

var (
	// RequestDuration tracks calls to the analytics service.
	RequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "orderpulse_upstream_request_duration_seconds",
			Help: "Duration of analytics service requests in seconds",
		},
		[]string{"endpoint", "status"},
	)

	RequestTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderpulse_upstream_requests_total",
			Help: "Total number of analytics service requests",
		},
		[]string{"endpoint", "status"},
	)

	DashboardRefreshes = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "orderpulse_dashboard_refreshes_total",
			Help: "Total number of rendered dashboards",
		},
	)

	SectionFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderpulse_dashboard_section_failures_total",
			Help: "Total number of dashboard views that could not be loaded",
		},
		[]string{"view"},
	)

	CacheEntries = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "orderpulse_cache_entries",
			Help: "Responses currently held by the response cache",
		},
	)

	CacheLookups = promauto.With(Registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "orderpulse_cache_lookups",
			Help: "Response cache lookups since start, by result",
		},
		[]string{"result"},
	)
)

// ObserveRequest records one analytics service call. A zero status means
// no response arrived.
func ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	label := "error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	RequestTotal.WithLabelValues(endpoint, label).Inc()
	RequestDuration.WithLabelValues(endpoint, label).Observe(elapsed.Seconds())
}

// MetricsHandler serves Registry in the Prometheus exposition format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ServeMetrics serves /metrics on addr until ctx is done.
func ServeMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server on %s: %w", addr, err)
	}
}
