package schema

import "time"

// RawTrendRecord is one monthly aggregate as delivered by the service.
type RawTrendRecord struct {
	YearMonth     string     `json:"yearMonth"`
	TotalOrderQty FlexNumber `json:"totalOrderQty"`
}

// TimeSeriesPoint is a normalized monthly aggregate.
type TimeSeriesPoint struct {
	YearMonth string    `json:"year_month" yaml:"year_month"`
	Period    time.Time `json:"period" yaml:"period"` // first day of the month, UTC
	Quantity  float64   `json:"quantity" yaml:"quantity"`
}

// VisibleRange selects a window of the series by percentage of its length.
type VisibleRange struct {
	StartPct float64 `json:"start_pct" yaml:"start_pct"`
	EndPct   float64 `json:"end_pct" yaml:"end_pct"`
}

// FullRange covers the whole series.
var FullRange = VisibleRange{StartPct: 0, EndPct: 100}

// Change is an absolute and relative difference.
type Change struct {
	Value      float64 `json:"value" yaml:"value"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// MetricsSnapshot holds the KPIs derived from the visible window.
type MetricsSnapshot struct {
	Average         float64 `json:"average" yaml:"average"`
	TotalChange     Change  `json:"total_change" yaml:"total_change"`
	AvgPeriodChange Change  `json:"avg_period_change" yaml:"avg_period_change"`
}

// TrendMetrics is the output of the derived-metrics engine.
type TrendMetrics struct {
	Range     VisibleRange      `json:"range" yaml:"range"`
	SeriesLen int               `json:"series_len" yaml:"series_len"`
	StartIdx  int               `json:"start_idx" yaml:"start_idx"`
	EndIdx    int               `json:"end_idx" yaml:"end_idx"`
	Visible   []TimeSeriesPoint `json:"visible" yaml:"visible"`
	Metrics   MetricsSnapshot   `json:"metrics" yaml:"metrics"`
}

// TrendResult is the rendered trend view.
type TrendResult struct {
	Filters      Filters `json:"filters" yaml:"filters"`
	TrendMetrics `yaml:",inline"`
	DateRange    string `json:"date_range" yaml:"date_range"`
	Excluded     int    `json:"excluded" yaml:"excluded"` // records dropped during normalization
}
