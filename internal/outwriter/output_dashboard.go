package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
)

// sectionTitles holds the heading printed above each dashboard section.
var sectionTitles = map[schema.View]string{
	schema.StatusView:  "Order Status Overview",
	schema.FiltersView: "Filter Options",
	schema.TrendView:   "Order Trend Analysis",
	schema.OrdersView:  "Order Details",
	schema.StockView:   "Top Stock Items",
	schema.ClassesView: "Product Class Distribution",
}

// WriteDashboard outputs every dashboard section. Failed sections are shown
// in place with their error; the other sections are unaffected.
func WriteDashboard(w io.Writer, result schema.DashboardResult, cfg *contract.Config, duration time.Duration) error {
	return dispatchOutput(w, cfg, result, outputFuncs{
		csv: func(w io.Writer) error { return writeCSVDashboard(w, result) },
		text: func(w io.Writer) error {
			if err := writeDashboardText(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, fmt.Sprintf("Dashboard (%d sections, %d failed)", len(result.Sections), result.FailedCount()), cfg, duration)
		},
	})
}

// PrintDashboard writes the dashboard to stdout or the configured output file.
func PrintDashboard(result schema.DashboardResult, cfg *contract.Config, duration time.Duration) error {
	return printResults(cfg, func(w io.Writer) error {
		return WriteDashboard(w, result, cfg, duration)
	}, "Wrote dashboard")
}

func writeDashboardText(w io.Writer, result schema.DashboardResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Sales order dashboard, generated %s\n", result.GeneratedAt.Format(contract.DateTimeFormat)); err != nil {
		return err
	}
	for _, section := range result.Sections {
		title := sectionTitles[section.View]
		heading := fmt.Sprintf("\n== %s ==", title)
		if _, err := fmt.Fprintln(w, paint(cfg, func() string { return contract.HeaderColor.Sprint(heading) }, heading)); err != nil {
			return err
		}
		if err := writeSectionText(w, section, cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeSectionText renders one section with the same table its standalone command uses.
func writeSectionText(w io.Writer, section schema.DashboardSection, cfg *contract.Config) error {
	if section.Failed() {
		msg := "⚠ " + section.Error
		_, err := fmt.Fprintln(w, paint(cfg, func() string { return contract.ErrorColor.Sprint(msg) }, msg))
		return err
	}
	switch {
	case section.Status != nil:
		return writeStatusTable(w, *section.Status, cfg)
	case section.Filters != nil:
		return writeFiltersTable(w, *section.Filters, cfg)
	case section.Trend != nil:
		return writeTrendTable(w, *section.Trend, cfg)
	case section.Orders != nil:
		return writeOrdersTable(w, *section.Orders, cfg)
	case section.Stock != nil:
		return writeStockTable(w, *section.Stock, cfg)
	case section.Classes != nil:
		return writeClassTable(w, *section.Classes, cfg)
	}
	_, err := fmt.Fprintln(w, "No data.")
	return err
}

// writeCSVDashboard writes one CSV block per section, each introduced by a
// "# view" line and separated by a blank line.
func writeCSVDashboard(w io.Writer, result schema.DashboardResult) error {
	for i, section := range result.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n", section.View); err != nil {
			return err
		}
		var err error
		switch {
		case section.Failed():
			err = writeCSVWithHeader(w, []string{"error"}, func(cw *csv.Writer) error {
				return cw.Write([]string{section.Error})
			})
		case section.Status != nil:
			err = writeCSVResultsForStatus(w, *section.Status)
		case section.Filters != nil:
			err = writeCSVResultsForFilters(w, *section.Filters)
		case section.Trend != nil:
			err = writeCSVResultsForTrend(w, *section.Trend)
		case section.Orders != nil:
			err = writeCSVResultsForOrders(w, *section.Orders)
		case section.Stock != nil:
			err = writeCSVResultsForStock(w, *section.Stock)
		case section.Classes != nil:
			err = writeCSVResultsForClasses(w, *section.Classes)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
