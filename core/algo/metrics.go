// Package algo has the pure computations behind the dashboard views.
package algo

import (
	"math"
	"strings"
	"time"

	"github.com/huangsam/orderpulse/schema"
)

// NormalizeSeries converts raw trend records into time series points.
// Records with an unparseable month, a non-numeric quantity or no quantity
// field at all are dropped. A null quantity counts as zero.
// The input order is preserved.
func NormalizeSeries(raw []schema.RawTrendRecord) []schema.TimeSeriesPoint {
	series := make([]schema.TimeSeriesPoint, 0, len(raw))
	for _, rec := range raw {
		ym := strings.TrimSpace(rec.YearMonth)
		period, err := time.Parse(schema.MonthLayout, ym)
		if err != nil {
			continue
		}
		if !rec.TotalOrderQty.Valid {
			continue
		}
		series = append(series, schema.TimeSeriesPoint{
			YearMonth: ym,
			Period:    period,
			Quantity:  rec.TotalOrderQty.Value,
		})
	}
	return series
}

// VisibleIndices maps a percentage range onto inclusive indices of a series of length n.
// Percentages are clamped to [0, 100] and swapped when start exceeds end.
// For an empty series it returns (0, -1).
func VisibleIndices(n int, r schema.VisibleRange) (startIdx, endIdx int) {
	if n <= 0 {
		return 0, -1
	}
	start := clampPct(r.StartPct, 0)
	end := clampPct(r.EndPct, 100)
	if start > end {
		start, end = end, start
	}
	last := n - 1
	startIdx = clampIdx(int(math.Floor(float64(last)*start/100)), last)
	endIdx = clampIdx(int(math.Floor(float64(last)*end/100)), last)
	return startIdx, endIdx
}

// ComputeMetrics normalizes the raw records and derives the KPIs for the visible range.
func ComputeMetrics(raw []schema.RawTrendRecord, r schema.VisibleRange) schema.TrendMetrics {
	return ComputeSeriesMetrics(NormalizeSeries(raw), r)
}

// ComputeSeriesMetrics derives the KPIs for the visible range of a normalized series.
func ComputeSeriesMetrics(series []schema.TimeSeriesPoint, r schema.VisibleRange) schema.TrendMetrics {
	startIdx, endIdx := VisibleIndices(len(series), r)

	visible := []schema.TimeSeriesPoint{}
	if endIdx >= startIdx {
		visible = append(visible, series[startIdx:endIdx+1]...)
	}

	return schema.TrendMetrics{
		Range:     r,
		SeriesLen: len(series),
		StartIdx:  startIdx,
		EndIdx:    endIdx,
		Visible:   visible,
		Metrics:   Snapshot(visible),
	}
}

// Snapshot computes average, total change and average period change over the points.
func Snapshot(points []schema.TimeSeriesPoint) schema.MetricsSnapshot {
	var snap schema.MetricsSnapshot
	if len(points) == 0 {
		return snap
	}

	sum := 0.0
	for _, p := range points {
		sum += p.Quantity
	}
	snap.Average = finite(sum / float64(len(points)))

	first := points[0].Quantity
	last := points[len(points)-1].Quantity
	total := last - first
	snap.TotalChange = schema.Change{
		Value:      finite(total),
		Percentage: finite(PercentChange(total, first)),
	}

	if len(points) < 2 {
		return snap
	}

	deltaSum, pctSum := 0.0, 0.0
	for i := 1; i < len(points); i++ {
		delta := points[i].Quantity - points[i-1].Quantity
		deltaSum += delta
		pctSum += PercentChange(delta, points[i-1].Quantity)
	}
	pairs := float64(len(points) - 1)
	snap.AvgPeriodChange = schema.Change{
		Value:      finite(deltaSum / pairs),
		Percentage: finite(pctSum / pairs),
	}
	return snap
}

// DirectionOf classifies the sign of v.
func DirectionOf(v float64) schema.Direction {
	switch {
	case v > 0:
		return schema.Up
	case v < 0:
		return schema.Down
	default:
		return schema.Flat
	}
}

// safePercent returns num/den*100. A zero denominator yields 100 for a
// non-zero numerator and 0 otherwise.
func PercentChange(num, den float64) float64 {
	if den == 0 {
		if num == 0 {
			return 0
		}
		return 100
	}
	return num / den * 100
}

// finite maps NaN to 0 and saturates infinities.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}

func clampPct(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(0, math.Min(100, v))
}

func clampIdx(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}
