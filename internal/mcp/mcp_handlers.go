package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/orderpulse/core"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.AnalyticsClient
}

// jsonResult renders v as an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// applyFilters overrides the configured filters with any filter arguments.
func applyFilters(cfg *contract.Config, request mcp.CallToolRequest) error {
	for _, key := range schema.AllFilterKeys {
		v := strings.TrimSpace(request.GetString(string(key), ""))
		if v == "" {
			continue
		}
		if err := cfg.Filters.Set(string(key), v); err != nil {
			return err
		}
	}
	return nil
}

func (h *toolHandler) handleGetStatusOverview(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := core.GetStatusResults(ctx, h.client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetFilterOptions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := core.GetFilterOptions(ctx, h.client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetOrderTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyFilters(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trend parameters: %v", err)), nil
	}
	cfg.Range = schema.VisibleRange{
		StartPct: request.GetFloat("start_pct", 0),
		EndPct:   request.GetFloat("end_pct", 100),
	}
	if err := contract.ValidateRange(cfg.Range); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trend parameters: %v", err)), nil
	}

	result, err := core.GetTrendResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetOrderDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyFilters(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid order parameters: %v", err)), nil
	}
	defaultPerPage := cfg.PerPage
	if defaultPerPage <= 0 {
		defaultPerPage = schema.DefaultPerPage
	}
	cfg.Page = request.GetInt("page", 1)
	cfg.PerPage = request.GetInt("per_page", defaultPerPage)
	if err := contract.ValidatePaging(cfg.Page, cfg.PerPage); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid order parameters: %v", err)), nil
	}

	result, err := core.GetOrderDetails(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetTopStockItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if item := strings.TrimSpace(request.GetString("item", "")); item != "" {
		cfg.Item = item
	}

	result, err := core.GetStockResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetClassDistribution(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := core.GetClassResults(ctx, h.client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetDashboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if raw := request.GetString("views", ""); raw != "" {
		views, err := schema.ParseViews(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid dashboard parameters: %v", err)), nil
		}
		cfg.Views = views
	}
	return jsonResult(core.GetDashboard(ctx, cfg, h.client))
}
