package schema

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// MonthLayout is the layout of the yearMonth field.
const MonthLayout = "2006-01"

// MonthLabelLayout is the layout used when displaying a month.
const MonthLabelLayout = "Jan 2006"

// FormatCount rounds v to the nearest integer and adds thousands separators.
func FormatCount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return humanize.Comma(int64(math.Round(v)))
}

// FormatUnits renders a quantity as "N units".
func FormatUnits(v float64) string {
	return FormatCount(v) + " units"
}

// FormatPercent renders a percentage with the given number of decimals and a % sign.
func FormatPercent(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, v)
}

// FormatSigned renders v with an explicit sign for positive values.
func FormatSigned(v float64, decimals int) string {
	if v > 0 {
		return fmt.Sprintf("+%.*f", decimals, v)
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

// MonthLabel formats a month as "Jan 2024".
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}

// DateRangeLabel formats the span of the points as "Jan 2024 - Mar 2024".
// It returns an empty string for an empty slice.
func DateRangeLabel(points []TimeSeriesPoint) string {
	if len(points) == 0 {
		return ""
	}
	return fmt.Sprintf("%s - %s", MonthLabel(points[0].Period), MonthLabel(points[len(points)-1].Period))
}

// FilterLabel turns a snake_case key into a title-cased label, e.g. "product_class" -> "Product Class".
func FilterLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseViews parses a comma-separated list of views. An empty string selects every view.
func ParseViews(s string) ([]View, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return append([]View(nil), AllViews...), nil
	}
	seen := make(map[View]struct{})
	var out []View
	for part := range strings.SplitSeq(s, ",") {
		v := View(strings.ToLower(strings.TrimSpace(part)))
		if v == "" {
			continue
		}
		if _, ok := ValidViews[v]; !ok {
			return nil, fmt.Errorf("invalid view '%s'. must be status, filters, trend, orders, stock, classes", part)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no views selected")
	}
	return out, nil
}
