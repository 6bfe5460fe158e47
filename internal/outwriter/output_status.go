package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteStatusResults outputs the order status overview in the configured format.
func WriteStatusResults(w io.Writer, result schema.StatusOverviewResult, cfg *contract.Config, duration time.Duration) error {
	return dispatchOutput(w, cfg, result, outputFuncs{
		csv: func(w io.Writer) error { return writeCSVResultsForStatus(w, result) },
		text: func(w io.Writer) error {
			if err := writeStatusTable(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, "Status overview", cfg, duration)
		},
	})
}

// PrintStatusResults writes the status overview to stdout or the configured output file.
func PrintStatusResults(result schema.StatusOverviewResult, cfg *contract.Config, duration time.Duration) error {
	return printResults(cfg, func(w io.Writer) error {
		return WriteStatusResults(w, result, cfg, duration)
	}, "Wrote status overview")
}

// writeStatusTable renders one row per status with its colored label.
func writeStatusTable(w io.Writer, result schema.StatusOverviewResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Code", "Status", "Count", "Percentage"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range result.Statuses {
		label := paint(cfg, func() string { return contract.GetStatusColorLabel(s.StatusCode, s.StatusDesc) }, s.StatusDesc)
		data = append(data, []string{
			s.StatusCode,
			label,
			schema.FormatCount(s.Count),
			schema.FormatPercent(s.Percentage.Float64(), 1),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total orders: %s across %d statuses\n", schema.FormatCount(result.TotalCount), len(result.Statuses))
	return err
}

// writeCSVResultsForStatus writes one CSV row per status.
func writeCSVResultsForStatus(w io.Writer, result schema.StatusOverviewResult) error {
	header := []string{"status_code", "status_desc", "count", "percentage"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range result.Statuses {
			pct := ""
			if s.Percentage.Valid {
				pct = strconv.FormatFloat(s.Percentage.Value, 'f', -1, 64)
			}
			row := []string{s.StatusCode, s.StatusDesc, strconv.FormatFloat(s.Count, 'f', -1, 64), pct}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteClassResults outputs the product-class distribution in the configured format.
func WriteClassResults(w io.Writer, result schema.ClassDistributionResult, cfg *contract.Config, duration time.Duration) error {
	return dispatchOutput(w, cfg, result, outputFuncs{
		csv: func(w io.Writer) error { return writeCSVResultsForClasses(w, result) },
		text: func(w io.Writer) error {
			if err := writeClassTable(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, "Product class distribution", cfg, duration)
		},
	})
}

// PrintClassResults writes the product-class distribution to stdout or the configured output file.
func PrintClassResults(result schema.ClassDistributionResult, cfg *contract.Config, duration time.Duration) error {
	return printResults(cfg, func(w io.Writer) error {
		return WriteClassResults(w, result, cfg, duration)
	}, "Wrote product class distribution")
}

func writeClassTable(w io.Writer, result schema.ClassDistributionResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"ID", "Product Class", "Orders", "Percentage"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := GetMaxTextWidth(cfg, 45)
	var data [][]string
	for _, c := range result.Classes {
		data = append(data, []string{
			c.ID,
			contract.TruncateText(c.Label, maxLabel),
			schema.FormatCount(c.Value),
			schema.FormatPercent(c.Percentage, 1),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total orders: %s, Product classes: %d, Reported total: %s\n",
		schema.FormatCount(result.TotalOrders), result.ClassCount, schema.FormatPercent(result.TotalPercentage, 1))
	return err
}

func writeCSVResultsForClasses(w io.Writer, result schema.ClassDistributionResult) error {
	header := []string{"id", "label", "value", "percentage"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range result.Classes {
			row := []string{
				c.ID,
				c.Label,
				strconv.FormatFloat(c.Value, 'f', -1, 64),
				strconv.FormatFloat(c.Percentage, 'f', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
