// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// filterOptions are the optional filter arguments shared by the filtered tools.
func filterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("branch", mcp.Description("Restrict to one branch (omit for all branches).")),
		mcp.WithString("area", mcp.Description("Restrict to one sales area.")),
		mcp.WithString("customer", mcp.Description("Restrict to one customer ID.")),
		mcp.WithString("product_class", mcp.Description("Restrict to one product class.")),
		mcp.WithString("salesperson", mcp.Description("Restrict to one salesperson ID.")),
	}
}

// NewMCPServer initializes and configures the OrderPulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.AnalyticsClient) *server.MCPServer {
	s := server.NewMCPServer(
		"OrderPulse Sales Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_order_status_overview ---
	s.AddTool(mcp.NewTool("get_order_status_overview",
		mcp.WithDescription("Count and share of sales orders per order status."),
	), h.handleGetStatusOverview)

	// --- 2. Tool: get_filter_options ---
	s.AddTool(mcp.NewTool("get_filter_options",
		mcp.WithDescription("Distinct values available for every filter (branch, area, customer, product class, salesperson)."),
	), h.handleGetFilterOptions)

	// --- 3. Tool: get_order_trend ---
	trendOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Monthly order quantity trend with average, total change and average period change over a visible window."),
		mcp.WithNumber("start_pct", mcp.Description("Start of the visible window as a percentage of the series (0-100). Defaults to 0.")),
		mcp.WithNumber("end_pct", mcp.Description("End of the visible window as a percentage of the series (0-100). Defaults to 100.")),
	}, filterOptions()...)
	s.AddTool(mcp.NewTool("get_order_trend", trendOpts...), h.handleGetOrderTrend)

	// --- 4. Tool: get_order_details ---
	orderOpts := append([]mcp.ToolOption{
		mcp.WithDescription("One page of sales order lines with their shipping state."),
		mcp.WithNumber("page", mcp.Description("Page number starting at 1.")),
		mcp.WithNumber("per_page", mcp.Description("Lines per page (1-500). Defaults to 50.")),
	}, filterOptions()...)
	s.AddTool(mcp.NewTool("get_order_details", orderOpts...), h.handleGetOrderDetails)

	// --- 5. Tool: get_top_stock_items ---
	s.AddTool(mcp.NewTool("get_top_stock_items",
		mcp.WithDescription("Most ordered stock items with stock level, price details and price history."),
		mcp.WithString("item", mcp.Description("Stock code whose price history should be highlighted.")),
	), h.handleGetTopStockItems)

	// --- 6. Tool: get_product_class_distribution ---
	s.AddTool(mcp.NewTool("get_product_class_distribution",
		mcp.WithDescription("Order value and share per product class."),
	), h.handleGetClassDistribution)

	// --- 7. Tool: get_dashboard ---
	s.AddTool(mcp.NewTool("get_dashboard",
		mcp.WithDescription("Several views at once. A view that fails carries an error message instead of data."),
		mcp.WithString("views", mcp.Description("Comma-separated views: status, filters, trend, orders, stock, classes. Defaults to all.")),
	), h.handleGetDashboard)

	return s
}

// StartMCPServer starts the OrderPulse MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.AnalyticsClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
