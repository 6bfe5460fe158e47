package algo

import (
	"math"
	"testing"

	"github.com/huangsam/orderpulse/schema"
)

// FuzzComputeSeriesMetrics checks that no input produces a non-finite metric
// or an out-of-range visible window.
func FuzzComputeSeriesMetrics(f *testing.F) {
	f.Add(100.0, 150.0, 120.0, 0.0, 100.0)
	f.Add(0.0, 0.0, 5.0, 0.0, 100.0)
	f.Add(1e308, -1e308, 1e-308, 33.0, 66.0)
	f.Add(7.0, 0.0, 0.0, 100.0, 0.0)
	f.Add(math.MaxFloat64, math.SmallestNonzeroFloat64, -1.0, -50.0, 500.0)

	f.Fuzz(func(t *testing.T, a, b, c, startPct, endPct float64) {
		var s []schema.TimeSeriesPoint
		for _, q := range []float64{a, b, c} {
			if math.IsNaN(q) || math.IsInf(q, 0) {
				continue // NormalizeSeries never emits these
			}
			s = append(s, schema.TimeSeriesPoint{Quantity: q})
		}

		got := ComputeSeriesMetrics(s, schema.VisibleRange{StartPct: startPct, EndPct: endPct})

		m := got.Metrics
		for _, v := range []float64{m.Average, m.TotalChange.Value, m.TotalChange.Percentage, m.AvgPeriodChange.Value, m.AvgPeriodChange.Percentage} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite metric %v for series %v range (%v, %v)", v, s, startPct, endPct)
			}
		}
		if len(s) == 0 {
			if len(got.Visible) != 0 {
				t.Fatalf("expected empty window, got %d points", len(got.Visible))
			}
			return
		}
		if got.StartIdx < 0 || got.EndIdx >= len(s) || got.StartIdx > got.EndIdx {
			t.Fatalf("bad window [%d, %d] for n=%d", got.StartIdx, got.EndIdx, len(s))
		}
		if len(got.Visible) != got.EndIdx-got.StartIdx+1 {
			t.Fatalf("visible length %d does not match window [%d, %d]", len(got.Visible), got.StartIdx, got.EndIdx)
		}
	})
}
