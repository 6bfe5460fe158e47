package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/huangsam/orderpulse/internal/contract"
	mcp_internal "github.com/huangsam/orderpulse/internal/mcp"
	"github.com/huangsam/orderpulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, client contract.AnalyticsClient, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	baseCfg := &contract.Config{
		Range:   schema.FullRange,
		Page:    1,
		PerPage: schema.DefaultPerPage,
		Views:   schema.AllViews,
	}
	s := mcp_internal.NewMCPServer(baseCfg, client)

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func trendRecords() []schema.RawTrendRecord {
	return []schema.RawTrendRecord{
		{YearMonth: "2024-01", TotalOrderQty: schema.NewFlexNumber(100)},
		{YearMonth: "2024-02", TotalOrderQty: schema.NewFlexNumber(150)},
		{YearMonth: "2024-03", TotalOrderQty: schema.NewFlexNumber(120)},
	}
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	client := &contract.MockAnalyticsClient{}

	t.Run("get_order_trend reversed range", func(t *testing.T) {
		res := callTool(t, client, "get_order_trend", map[string]any{
			"start_pct": 80.0,
			"end_pct":   20.0,
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, resultText(t, res), "cannot be after")
	})

	t.Run("get_order_trend out of bounds", func(t *testing.T) {
		res := callTool(t, client, "get_order_trend", map[string]any{"end_pct": 150.0})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "outside 0..100")
	})

	t.Run("get_order_details page zero", func(t *testing.T) {
		res := callTool(t, client, "get_order_details", map[string]any{"page": 0.0})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "page must be at least 1")
	})

	t.Run("get_order_details per page too large", func(t *testing.T) {
		res := callTool(t, client, "get_order_details", map[string]any{"per_page": 1000.0})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "per-page must be between 1 and 500")
	})

	t.Run("get_dashboard bad view", func(t *testing.T) {
		res := callTool(t, client, "get_dashboard", map[string]any{"views": "status,charts"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "invalid view")
	})

	client.AssertNotCalled(t, "OrderTrend", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "OrderDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMCPServerHandlers_Trend(t *testing.T) {
	var want schema.Filters
	require.NoError(t, want.Set("branch", "North"))
	require.NoError(t, want.Set("product_class", "Widgets"))

	client := &contract.MockAnalyticsClient{}
	client.On("OrderTrend", mock.Anything, want).Return(trendRecords(), nil)

	res := callTool(t, client, "get_order_trend", map[string]any{
		"branch":        "North",
		"product_class": "Widgets",
	})
	require.False(t, res.IsError, resultText(t, res))

	var got schema.TrendResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Len(t, got.Visible, 3)
	assert.Equal(t, 20.0, got.Metrics.TotalChange.Value)
	assert.InDelta(t, 15.0, got.Metrics.AvgPeriodChange.Percentage, 1e-9)
	client.AssertExpectations(t)
}

func TestMCPServerHandlers_OrderDetails(t *testing.T) {
	client := &contract.MockAnalyticsClient{}
	client.On("OrderDetails", mock.Anything, mock.Anything, 3, 20).Return(schema.OrderDetailPage{
		Data:       []schema.OrderDetail{{SorID: "S1", OrderQty: 4, ShipQty: 1, BackOrderQty: 3}},
		Pagination: schema.Pagination{Page: 3, TotalPages: 5, TotalCount: 95},
	}, nil)

	res := callTool(t, client, "get_order_details", map[string]any{"page": 3.0, "per_page": 20.0})
	require.False(t, res.IsError, resultText(t, res))

	var got schema.OrderDetailsResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got.Orders, 1)
	assert.Equal(t, schema.BackOrderState, got.Orders[0].State)
	assert.Equal(t, 41, got.ShowingFrom)
	assert.Equal(t, 60, got.ShowingTo)
	client.AssertExpectations(t)
}

func TestMCPServerHandlers_SimpleViews(t *testing.T) {
	client := &contract.MockAnalyticsClient{}
	client.On("OrderStatusOverview", mock.Anything).Return([]schema.OrderStatus{
		{StatusCode: "9", StatusDesc: "Complete", Count: 12},
	}, nil)
	client.On("FilterOptions", mock.Anything).Return(schema.FilterOptions{Area: []string{"East"}}, nil)
	client.On("TopStockItems", mock.Anything).Return([]schema.StockItem{
		{StockCode: "A100", TotalOrderQty: 10, TotalQtyOnHand: 3},
	}, nil)
	client.On("ProductClassDistribution", mock.Anything).Return(schema.ProductClassDistribution{
		Data: []schema.ProductClassShare{{ID: "W", Label: "Widgets", Value: 7, Percentage: 100}},
	}, nil)

	tests := []struct {
		tool     string
		args     map[string]any
		contains string
	}{
		{"get_order_status_overview", nil, `"total_count": 12`},
		{"get_filter_options", nil, `"label": "Product Class"`},
		{"get_top_stock_items", map[string]any{"item": "A100"}, `"focus": "A100"`},
		{"get_product_class_distribution", nil, `"class_count": 1`},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			res := callTool(t, client, tt.tool, tt.args)
			require.False(t, res.IsError, resultText(t, res))
			assert.Contains(t, resultText(t, res), tt.contains)
		})
	}
}

func TestMCPServerHandlers_UpstreamError(t *testing.T) {
	client := &contract.MockAnalyticsClient{}
	client.On("ProductClassDistribution", mock.Anything).Return(schema.ProductClassDistribution{}, errors.New("failed to fetch product class distribution"))

	res := callTool(t, client, "get_product_class_distribution", nil)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "failed to fetch product class distribution")
}

func TestMCPServerHandlers_DashboardDegrades(t *testing.T) {
	client := &contract.MockAnalyticsClient{}
	client.On("OrderStatusOverview", mock.Anything).Return(nil, errors.New("boom"))
	client.On("ProductClassDistribution", mock.Anything).Return(schema.ProductClassDistribution{
		Data: []schema.ProductClassShare{{ID: "W", Label: "Widgets", Value: 7, Percentage: 100}},
	}, nil)

	res := callTool(t, client, "get_dashboard", map[string]any{"views": "status,classes"})
	require.False(t, res.IsError, resultText(t, res))

	var got schema.DashboardResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "boom", got.Sections[0].Error)
	require.NotNil(t, got.Sections[1].Classes)
}
