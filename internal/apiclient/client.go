// Package apiclient talks to the sales-order analytics service over HTTP.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/iocache"
	"github.com/huangsam/orderpulse/internal/logger"
	"github.com/huangsam/orderpulse/schema"
	"go.uber.org/zap"
)

// Service endpoints.
const (
	StatusOverviewPath    = "/order_status_overview"
	FilterOptionsPath     = "/order_qty_filter_options"
	TrendPath             = "/order_qty_trend_data"
	OrderDetailsPath      = "/order_detail_table_data"
	TopStockItemsPath     = "/top_order_stock_items"
	ProductClassPath      = "/order_by_product_class"
	DownloadReportPath    = "/download_static_report"
	requestIDHeader       = "X-Request-ID"
	maxErrorBodyBytes     = 4096
	defaultRequestTimeout = contract.DefaultTimeout
)

// Generic messages returned when an endpoint cannot be read.
const (
	msgStatusOverview = "failed to fetch order status overview"
	msgFilterOptions  = "failed to fetch filter options"
	msgTrend          = "failed to fetch order trend analysis"
	msgOrderDetails   = "failed to fetch order details"
	msgTopStockItems  = "failed to fetch top stock items"
	msgProductClass   = "failed to fetch product class distribution"
	msgDownload       = "failed to download report"
)

// envelope is the {"data": ...} wrapper used by most endpoints.
type envelope[T any] struct {
	Data T `json:"data"`
}

// Client is the HTTP implementation of contract.AnalyticsClient.
// JSON reads go through the Fetcher so identical concurrent requests share one round trip.
type Client struct {
	baseURL    string
	httpClient *http.Client
	fetcher    *iocache.Fetcher
}

var _ contract.AnalyticsClient = &Client{} // Compile-time check

// NewClient creates a client for baseURL. A nil fetcher still deduplicates
// in-flight requests but stores nothing.
func NewClient(baseURL string, timeout time.Duration, fetcher *iocache.Fetcher) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	if fetcher == nil {
		fetcher = iocache.NewFetcher(nil, 0)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		fetcher:    fetcher,
	}
}

// Fetcher returns the response fetcher used by the client.
func (c *Client) Fetcher() *iocache.Fetcher {
	return c.fetcher
}

// OrderStatusOverview implements contract.AnalyticsClient.
func (c *Client) OrderStatusOverview(ctx context.Context) ([]schema.OrderStatus, error) {
	out, err := getJSON[envelope[[]schema.OrderStatus]](ctx, c, StatusOverviewPath, nil, msgStatusOverview)
	return out.Data, err
}

// FilterOptions implements contract.AnalyticsClient.
func (c *Client) FilterOptions(ctx context.Context) (schema.FilterOptions, error) {
	out, err := getJSON[envelope[schema.FilterOptions]](ctx, c, FilterOptionsPath, nil, msgFilterOptions)
	return out.Data, err
}

// OrderTrend implements contract.AnalyticsClient.
func (c *Client) OrderTrend(ctx context.Context, filters schema.Filters) ([]schema.RawTrendRecord, error) {
	out, err := getJSON[envelope[[]schema.RawTrendRecord]](ctx, c, TrendPath, filters.Params(), msgTrend)
	return out.Data, err
}

// OrderDetails implements contract.AnalyticsClient.
func (c *Client) OrderDetails(ctx context.Context, filters schema.Filters, page, perPage int) (schema.OrderDetailPage, error) {
	params := filters.Params()
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	return getJSON[schema.OrderDetailPage](ctx, c, OrderDetailsPath, params, msgOrderDetails)
}

// TopStockItems implements contract.AnalyticsClient.
func (c *Client) TopStockItems(ctx context.Context) ([]schema.StockItem, error) {
	out, err := getJSON[envelope[[]schema.StockItem]](ctx, c, TopStockItemsPath, nil, msgTopStockItems)
	return out.Data, err
}

// ProductClassDistribution implements contract.AnalyticsClient.
func (c *Client) ProductClassDistribution(ctx context.Context) (schema.ProductClassDistribution, error) {
	return getJSON[schema.ProductClassDistribution](ctx, c, ProductClassPath, nil, msgProductClass)
}

// getJSON reads endpoint through the fetcher and decodes the body into T.
func getJSON[T any](ctx context.Context, c *Client, endpoint string, params url.Values, msg string) (T, error) {
	var out T
	key := iocache.Key(endpoint, params)
	body, err := c.fetcher.Fetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		return c.readJSON(ctx, endpoint, params, msg)
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &RequestError{Endpoint: endpoint, Message: msg, Err: fmt.Errorf("decode %s: %w", endpoint, err)}
	}
	return out, nil
}

// readJSON performs one GET and returns the body when it is well-formed JSON.
// Malformed bodies are errors so they never reach the cache.
func (c *Client) readJSON(ctx context.Context, endpoint string, params url.Values, msg string) ([]byte, error) {
	resp, err := c.get(ctx, endpoint, params, msg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Endpoint: endpoint, Message: msg, Err: fmt.Errorf("read %s: %w", endpoint, err)}
	}
	if !json.Valid(body) {
		return nil, &RequestError{Endpoint: endpoint, Message: msg, Err: fmt.Errorf("decode %s: invalid JSON body", endpoint)}
	}
	return body, nil
}

// get sends a GET with a fresh request ID and maps transport and status failures
// to *RequestError. The caller closes the body of a successful response.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, msg string) (*http.Response, error) {
	target := c.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	requestID := uuid.NewString()
	ctx = logger.WithRequestID(ctx, requestID)
	log := logger.WithContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &RequestError{Endpoint: endpoint, Message: msg, Err: err}
	}
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ObserveRequest(endpoint, 0, time.Since(start))
		log.Debug("request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, &RequestError{Endpoint: endpoint, Message: msg, Err: err}
	}
	logger.ObserveRequest(endpoint, resp.StatusCode, time.Since(start))
	log.Debug("request completed",
		zap.String("endpoint", endpoint),
		zap.String("query", params.Encode()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer func() { _ = resp.Body.Close() }()
		reqErr := &RequestError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: msg}
		if body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)); readErr == nil && len(strings.TrimSpace(string(body))) > 0 {
			reqErr.Err = errors.New(strings.TrimSpace(string(body)))
		}
		return nil, reqErr
	}
	return resp, nil
}
