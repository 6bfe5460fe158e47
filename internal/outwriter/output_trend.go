package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/orderpulse/core/algo"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/parquet"
	"github.com/huangsam/orderpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTrendResults outputs the order trend and its KPIs in the configured format.
func WriteTrendResults(w io.Writer, result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return dispatchOutput(w, cfg, result, outputFuncs{
		csv: func(w io.Writer) error { return writeCSVResultsForTrend(w, result) },
		text: func(w io.Writer) error {
			if err := writeTrendTable(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, "Trend analysis", cfg, duration)
		},
		parquet: func(path string) error {
			return parquet.WriteTrendParquet(parquet.TrendPoints(result), path)
		},
	})
}

// PrintTrendResults writes the trend to stdout or the configured output file.
func PrintTrendResults(result schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return printResults(cfg, func(w io.Writer) error {
		return WriteTrendResults(w, result, cfg, duration)
	}, "Wrote trend results")
}

// writeTrendTable prints the visible months with their month-over-month change,
// followed by the KPI summary.
func writeTrendTable(w io.Writer, result schema.TrendResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Order quantity trend (filters: %s)\n", result.Filters); err != nil {
		return err
	}
	if len(result.Visible) == 0 {
		_, err := fmt.Fprintln(w, "No trend data available for the selected filters.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Period: %s (%d of %d months, range %g%%-%g%%)\n",
		result.DateRange, len(result.Visible), result.SeriesLen, result.Range.StartPct, result.Range.EndPct); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Month", "Quantity", "Change", "Change %"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, p := range result.Visible {
		change, changePct := "-", "-"
		if i > 0 {
			prev := result.Visible[i-1].Quantity
			delta := p.Quantity - prev
			dir := algo.DirectionOf(delta)
			change = colorDirection(cfg, dir, signedUnits(delta))
			changePct = colorDirection(cfg, dir, signedPercent(algo.PercentChange(delta, prev), cfg.Precision))
		}
		data = append(data, []string{schema.MonthLabel(p.Period), schema.FormatCount(p.Quantity), change, changePct})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	return writeTrendKPIs(w, result.Metrics, cfg)
}

// writeTrendKPIs prints the average, total change and average period change.
func writeTrendKPIs(w io.Writer, m schema.MetricsSnapshot, cfg *contract.Config) error {
	total := algo.DirectionOf(m.TotalChange.Value)
	avg := algo.DirectionOf(m.AvgPeriodChange.Value)
	lines := []string{
		fmt.Sprintf("Average: %s", schema.FormatUnits(m.Average)),
		fmt.Sprintf("Total change: %s (%s)",
			colorDirection(cfg, total, signedUnits(m.TotalChange.Value)),
			colorDirection(cfg, total, signedPercent(m.TotalChange.Percentage, cfg.Precision))),
		fmt.Sprintf("Avg period change: %s (%s)",
			colorDirection(cfg, avg, signedUnits(m.AvgPeriodChange.Value)),
			colorDirection(cfg, avg, signedPercent(m.AvgPeriodChange.Percentage, cfg.Precision))),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func colorDirection(cfg *contract.Config, dir schema.Direction, text string) string {
	return paint(cfg, func() string { return contract.GetDirectionColorText(dir, text) }, text)
}

// writeCSVResultsForTrend writes the visible points; KPIs are carried by JSON and YAML.
func writeCSVResultsForTrend(w io.Writer, result schema.TrendResult) error {
	header := []string{"year_month", "period", "quantity"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range result.Visible {
			row := []string{
				p.YearMonth,
				p.Period.Format(contract.DateTimeFormat),
				strconv.FormatFloat(p.Quantity, 'f', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
