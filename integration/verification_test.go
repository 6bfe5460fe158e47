//go:build basic

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/orderpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrendVerification checks the trend KPIs end to end.
func TestTrendVerification(t *testing.T) {
	svc := newFakeService(t)
	out, err := runOrderpulse(t, t.TempDir(), svc.URL, "trend", "--output", "json", "--branch", "North")
	require.NoError(t, err)

	var got schema.TrendResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Visible, 3)
	assert.Equal(t, "Jan 2024 - Mar 2024", got.DateRange)
	assert.Equal(t, 20.0, got.Metrics.TotalChange.Value)
	assert.Equal(t, 20.0, got.Metrics.TotalChange.Percentage)
	assert.InDelta(t, 15.0, got.Metrics.AvgPeriodChange.Percentage, 1e-9)
}

// TestTrendTextOutput checks the human readable rendering.
func TestTrendTextOutput(t *testing.T) {
	svc := newFakeService(t)
	out, err := runOrderpulse(t, t.TempDir(), svc.URL, "trend", "--color", "no", "--range", "50,100")
	require.NoError(t, err)
	assert.Contains(t, out, "Order quantity trend")
	assert.Contains(t, out, "Feb 2024")
	assert.NotContains(t, out, "Jan 2024")
}

// TestOrdersVerification checks paging and derived line states.
func TestOrdersVerification(t *testing.T) {
	svc := newFakeService(t)
	out, err := runOrderpulse(t, t.TempDir(), svc.URL, "orders", "--output", "json", "--per-page", "50")
	require.NoError(t, err)

	var got schema.OrderDetailsResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Orders, 2)
	assert.Equal(t, schema.CompletedState, got.Orders[0].State)
	assert.Equal(t, schema.BackOrderState, got.Orders[1].State)
	assert.Equal(t, 1, got.ShowingFrom)
	assert.Equal(t, 50, got.ShowingTo)
}

// TestDashboardDegradesPerView checks that one broken endpoint only blanks its own view.
func TestDashboardDegradesPerView(t *testing.T) {
	svc := newFakeService(t, "/order_status_overview")
	out, err := runOrderpulse(t, t.TempDir(), svc.URL, "dashboard", "--output", "json")
	require.NoError(t, err)

	var got schema.DashboardResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Sections, len(schema.AllViews))
	assert.Equal(t, "failed to fetch order status overview", got.Sections[0].Error)
	for _, s := range got.Sections[1:] {
		assert.Empty(t, s.Error, "view %s", s.View)
	}
}

// TestCacheStatusCollapsesRequests checks that warming the views hits each endpoint once.
func TestCacheStatusCollapsesRequests(t *testing.T) {
	svc := newFakeService(t)
	out, err := runOrderpulse(t, t.TempDir(), svc.URL, "cache", "status", "--output", "json")
	require.NoError(t, err)

	var got schema.CacheStatus
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, schema.MemoryBackend, got.Backend)
	assert.Equal(t, len(fakeRoutes), got.TotalEntries)
	for path := range fakeRoutes {
		assert.Equal(t, int32(1), svc.Hits(path), path)
	}
}

// TestReportDownload checks that the report lands under the announced name.
func TestReportDownload(t *testing.T) {
	svc := newFakeService(t)
	dir := t.TempDir()
	out, err := runOrderpulse(t, dir, svc.URL, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "comprehensive_order_report.xlsx")

	data, err := os.ReadFile(filepath.Join(dir, "comprehensive_order_report.xlsx"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PK"))
}

// TestInvalidRangeRejected checks flag validation before any request is sent.
func TestInvalidRangeRejected(t *testing.T) {
	svc := newFakeService(t)
	_, err := runOrderpulse(t, t.TempDir(), svc.URL, "trend", "--range", "80,20")
	require.Error(t, err)
	assert.Zero(t, svc.Hits("/order_qty_trend_data"))
}
