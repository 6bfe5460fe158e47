package contract

import (
	"context"
	"io"

	"github.com/huangsam/orderpulse/schema"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsClient is a mock implementation of AnalyticsClient for testing.
type MockAnalyticsClient struct {
	mock.Mock
}

var _ AnalyticsClient = &MockAnalyticsClient{} // Compile-time check

// OrderStatusOverview implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) OrderStatusOverview(ctx context.Context) ([]schema.OrderStatus, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).([]schema.OrderStatus)
	return out, ret.Error(1)
}

// FilterOptions implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) FilterOptions(ctx context.Context) (schema.FilterOptions, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).(schema.FilterOptions)
	return out, ret.Error(1)
}

// OrderTrend implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) OrderTrend(ctx context.Context, filters schema.Filters) ([]schema.RawTrendRecord, error) {
	ret := m.Called(ctx, filters)
	out, _ := ret.Get(0).([]schema.RawTrendRecord)
	return out, ret.Error(1)
}

// OrderDetails implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) OrderDetails(ctx context.Context, filters schema.Filters, page, perPage int) (schema.OrderDetailPage, error) {
	ret := m.Called(ctx, filters, page, perPage)
	out, _ := ret.Get(0).(schema.OrderDetailPage)
	return out, ret.Error(1)
}

// TopStockItems implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) TopStockItems(ctx context.Context) ([]schema.StockItem, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).([]schema.StockItem)
	return out, ret.Error(1)
}

// ProductClassDistribution implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) ProductClassDistribution(ctx context.Context) (schema.ProductClassDistribution, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).(schema.ProductClassDistribution)
	return out, ret.Error(1)
}

// DownloadReport implements the AnalyticsClient interface.
func (m *MockAnalyticsClient) DownloadReport(ctx context.Context, w io.Writer) (schema.ReportDownload, error) {
	ret := m.Called(ctx, w)
	out, _ := ret.Get(0).(schema.ReportDownload)
	return out, ret.Error(1)
}
