package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteFilterOptions outputs the filter options in the configured format.
func WriteFilterOptions(w io.Writer, result schema.FilterOptionsResult, cfg *contract.Config, duration time.Duration) error {
	return dispatchOutput(w, cfg, result, outputFuncs{
		csv: func(w io.Writer) error { return writeCSVResultsForFilters(w, result) },
		text: func(w io.Writer) error {
			if err := writeFiltersTable(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, "Filter options", cfg, duration)
		},
	})
}

// PrintFilterOptions writes the filter options to stdout or the configured output file.
func PrintFilterOptions(result schema.FilterOptionsResult, cfg *contract.Config, duration time.Duration) error {
	return printResults(cfg, func(w io.Writer) error {
		return WriteFilterOptions(w, result, cfg, duration)
	}, "Wrote filter options")
}

// writeFiltersTable renders one row per category; long option lists are truncated.
func writeFiltersTable(w io.Writer, result schema.FilterOptionsResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Filter", "Key", "Options", "Values"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxValues := GetMaxTextWidth(cfg, 40)
	var data [][]string
	for _, c := range result.Categories {
		values := "All"
		if len(c.Options) > 0 {
			values = contract.TruncateText(strings.Join(c.Options, ", "), maxValues)
		}
		data = append(data, []string{c.Label, string(c.Key), strconv.Itoa(len(c.Options)), values})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForFilters writes one row per (category, option) pair.
func writeCSVResultsForFilters(w io.Writer, result schema.FilterOptionsResult) error {
	header := []string{"key", "label", "option"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range result.Categories {
			for _, opt := range c.Options {
				if err := cw.Write([]string{string(c.Key), c.Label, opt}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
