package algo

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/huangsam/orderpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(ym string, qty float64) schema.RawTrendRecord {
	return schema.RawTrendRecord{YearMonth: ym, TotalOrderQty: schema.NewFlexNumber(qty)}
}

func series(qty ...float64) []schema.TimeSeriesPoint {
	out := make([]schema.TimeSeriesPoint, len(qty))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, q := range qty {
		p := start.AddDate(0, i, 0)
		out[i] = schema.TimeSeriesPoint{YearMonth: p.Format(schema.MonthLayout), Period: p, Quantity: q}
	}
	return out
}

func TestNormalizeSeries(t *testing.T) {
	raw := []schema.RawTrendRecord{
		rec("2024-01", 100),
		{YearMonth: "2024-13", TotalOrderQty: schema.NewFlexNumber(5)}, // bad month
		{YearMonth: "Jan 2024", TotalOrderQty: schema.NewFlexNumber(5)},
		{YearMonth: "2024-02"}, // quantity missing
		rec(" 2024-03 ", 120),
	}
	got := NormalizeSeries(raw)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01", got[0].YearMonth)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got[0].Period)
	assert.Equal(t, 100.0, got[0].Quantity)
	assert.Equal(t, "2024-03", got[1].YearMonth)
	assert.Equal(t, 120.0, got[1].Quantity)
}

func TestNormalizeSeriesNullVersusMissingQuantity(t *testing.T) {
	body := `[
		{"yearMonth": "2024-01", "totalOrderQty": null},
		{"yearMonth": "2024-02"},
		{"yearMonth": "2024-03", "totalOrderQty": "n/a"},
		{"yearMonth": "2024-04", "totalOrderQty": ""},
		{"yearMonth": "2024-05", "totalOrderQty": 7}
	]`
	var raw []schema.RawTrendRecord
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	got := NormalizeSeries(raw)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01", got[0].YearMonth) // null defaults to zero
	assert.Zero(t, got[0].Quantity)
	assert.Equal(t, "2024-04", got[1].YearMonth) // empty string defaults to zero
	assert.Zero(t, got[1].Quantity)
	assert.Equal(t, "2024-05", got[2].YearMonth)
	assert.Equal(t, 7.0, got[2].Quantity)
}

func TestNormalizeSeriesKeepsOrder(t *testing.T) {
	got := NormalizeSeries([]schema.RawTrendRecord{rec("2024-03", 3), rec("2024-01", 1)})
	require.Len(t, got, 2)
	assert.Equal(t, "2024-03", got[0].YearMonth)
	assert.Equal(t, "2024-01", got[1].YearMonth)
}

func TestVisibleIndices(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		r         schema.VisibleRange
		wantStart int
		wantEnd   int
	}{
		{"empty", 0, schema.FullRange, 0, -1},
		{"ten full", 10, schema.FullRange, 0, 9},
		{"single", 1, schema.FullRange, 0, 0},
		{"middle", 10, schema.VisibleRange{StartPct: 25, EndPct: 75}, 2, 6},
		{"floor", 4, schema.VisibleRange{StartPct: 50, EndPct: 99}, 1, 2},
		{"clamped", 5, schema.VisibleRange{StartPct: -20, EndPct: 250}, 0, 4},
		{"swapped", 10, schema.VisibleRange{StartPct: 100, EndPct: 0}, 0, 9},
		{"nan", 10, schema.VisibleRange{StartPct: math.NaN(), EndPct: math.NaN()}, 0, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := VisibleIndices(tt.n, tt.r)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestComputeMetricsReferenceSeries(t *testing.T) {
	raw := []schema.RawTrendRecord{rec("2024-01", 100), rec("2024-02", 150), rec("2024-03", 120)}
	got := ComputeMetrics(raw, schema.FullRange)

	require.Len(t, got.Visible, 3)
	assert.InDelta(t, 123.333333, got.Metrics.Average, 1e-5)
	assert.Equal(t, 20.0, got.Metrics.TotalChange.Value)
	assert.Equal(t, 20.0, got.Metrics.TotalChange.Percentage)
	assert.Equal(t, 10.0, got.Metrics.AvgPeriodChange.Value)
	// mean of +50% and -20%
	assert.InDelta(t, 15.0, got.Metrics.AvgPeriodChange.Percentage, 1e-9)
}

func TestComputeMetricsFullRangeIsWholeSeries(t *testing.T) {
	for n := 1; n <= 12; n++ {
		s := series(make([]float64, n)...)
		got := ComputeSeriesMetrics(s, schema.FullRange)
		assert.Equal(t, s, got.Visible, "n=%d", n)
		assert.Equal(t, n, got.SeriesLen)
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	got := ComputeMetrics(nil, schema.FullRange)
	assert.NotNil(t, got.Visible)
	assert.Empty(t, got.Visible)
	assert.Equal(t, schema.MetricsSnapshot{}, got.Metrics)
	assert.Equal(t, 0, got.StartIdx)
	assert.Equal(t, -1, got.EndIdx)
}

func TestComputeMetricsZeroBaseline(t *testing.T) {
	flat := ComputeSeriesMetrics(series(0, 0), schema.FullRange)
	assert.Equal(t, 0.0, flat.Metrics.TotalChange.Percentage)
	assert.Equal(t, 0.0, flat.Metrics.AvgPeriodChange.Percentage)

	rising := ComputeSeriesMetrics(series(0, 5), schema.FullRange)
	assert.Equal(t, 5.0, rising.Metrics.TotalChange.Value)
	assert.Equal(t, 100.0, rising.Metrics.TotalChange.Percentage)
	assert.Equal(t, 100.0, rising.Metrics.AvgPeriodChange.Percentage)

	// A zero in the middle only affects the pair that divides by it.
	mid := ComputeSeriesMetrics(series(10, 0, 10), schema.FullRange)
	assert.Equal(t, 0.0, mid.Metrics.TotalChange.Percentage)
	assert.Equal(t, 0.0, mid.Metrics.AvgPeriodChange.Percentage) // (-100 + 100) / 2
}

func TestComputeMetricsSingleton(t *testing.T) {
	got := ComputeSeriesMetrics(series(42), schema.FullRange)
	assert.Equal(t, 42.0, got.Metrics.Average)
	assert.Equal(t, schema.Change{}, got.Metrics.TotalChange)
	assert.Equal(t, schema.Change{}, got.Metrics.AvgPeriodChange)

	// A narrow window over a longer series also collapses to one point.
	narrow := ComputeSeriesMetrics(series(1, 2, 3, 4, 5), schema.VisibleRange{StartPct: 50, EndPct: 60})
	require.Len(t, narrow.Visible, 1)
	assert.Equal(t, schema.Change{}, narrow.Metrics.AvgPeriodChange)
}

func TestComputeMetricsSubRange(t *testing.T) {
	s := series(10, 20, 40, 80, 160)
	got := ComputeSeriesMetrics(s, schema.VisibleRange{StartPct: 25, EndPct: 75})
	assert.Equal(t, 1, got.StartIdx)
	assert.Equal(t, 3, got.EndIdx)
	require.Len(t, got.Visible, 3)
	assert.InDelta(t, 46.666666, got.Metrics.Average, 1e-5)
	assert.Equal(t, 60.0, got.Metrics.TotalChange.Value)
	assert.Equal(t, 300.0, got.Metrics.TotalChange.Percentage)
	assert.Equal(t, 30.0, got.Metrics.AvgPeriodChange.Value)
	assert.Equal(t, 100.0, got.Metrics.AvgPeriodChange.Percentage)
}

func TestComputeMetricsDeterministic(t *testing.T) {
	s := series(3, 1, 4, 1, 5, 9, 2, 6)
	r := schema.VisibleRange{StartPct: 10, EndPct: 90}
	a := ComputeSeriesMetrics(s, r)
	b := ComputeSeriesMetrics(s, r)
	assert.Equal(t, a.Metrics, b.Metrics)
	assert.Equal(t, math.Float64bits(a.Metrics.AvgPeriodChange.Percentage), math.Float64bits(b.Metrics.AvgPeriodChange.Percentage))
}

func TestComputeMetricsDoesNotAliasInput(t *testing.T) {
	s := series(1, 2, 3)
	got := ComputeSeriesMetrics(s, schema.FullRange)
	got.Visible[0].Quantity = 999
	assert.Equal(t, 1.0, s[0].Quantity)
}

func TestComputeMetricsOverflowStaysFinite(t *testing.T) {
	got := ComputeSeriesMetrics(series(math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64), schema.FullRange)
	for _, v := range []float64{
		got.Metrics.Average,
		got.Metrics.TotalChange.Value,
		got.Metrics.TotalChange.Percentage,
		got.Metrics.AvgPeriodChange.Value,
		got.Metrics.AvgPeriodChange.Percentage,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value %v", v)
	}
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 50.0, PercentChange(50, 100))
	assert.Equal(t, -20.0, PercentChange(-30, 150))
	assert.Equal(t, 100.0, PercentChange(5, 0))
	assert.Equal(t, 100.0, PercentChange(-5, 0))
	assert.Equal(t, 0.0, PercentChange(0, 0))
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, schema.Up, DirectionOf(0.1))
	assert.Equal(t, schema.Down, DirectionOf(-3))
	assert.Equal(t, schema.Flat, DirectionOf(0))
}
