package algo

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/huangsam/orderpulse/schema"
)

// priceDateLayouts are the date formats the service uses for price changes.
var priceDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// SummarizeStock computes the aggregate statistics shown above the stock table.
func SummarizeStock(items []schema.StockItem) schema.StockSummary {
	var sum schema.StockSummary
	if len(items) == 0 {
		return sum
	}
	classes := make(map[string]struct{})
	for _, item := range items {
		sum.TotalOrderQty += item.TotalOrderQty
		classes[item.ProductClass] = struct{}{}
		sum.PriceUpdates += len(item.PriceHistory)
	}
	sum.AverageOrderSize = math.Round(sum.TotalOrderQty / float64(len(items)))
	sum.ProductClasses = len(classes)
	return sum
}

// SplitPriceDetails splits the comma separated price details string.
func SplitPriceDetails(details string) []string {
	out := []string{}
	for part := range strings.SplitSeq(details, ", ") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SortedPriceHistory returns the entries that carry a price code, newest first.
// Entries with an unparseable date sort after all dated ones, keeping their order.
func SortedPriceHistory(history []schema.PriceHistory) []schema.PriceHistory {
	out := make([]schema.PriceHistory, 0, len(history))
	for _, h := range history {
		if h.PriceCode != "" {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := ParsePriceDate(out[i].DateChanged)
		tj, okJ := ParsePriceDate(out[j].DateChanged)
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
	return out
}

// ParsePriceDate parses a price change date in any of the known layouts.
func ParsePriceDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range priceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
