package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteStockResults outputs the top stock items in the configured format.
func WriteStockResults(w io.Writer, result schema.StockResult, cfg *contract.Config, duration time.Duration) error {
	return dispatchOutput(w, cfg, result, outputFuncs{
		csv: func(w io.Writer) error { return writeCSVResultsForStock(w, result) },
		text: func(w io.Writer) error {
			if err := writeStockTable(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, "Top stock items", cfg, duration)
		},
	})
}

// PrintStockResults writes the top stock items to stdout or the configured output file.
func PrintStockResults(result schema.StockResult, cfg *contract.Config, duration time.Duration) error {
	return printResults(cfg, func(w io.Writer) error {
		return WriteStockResults(w, result, cfg, duration)
	}, "Wrote top stock items")
}

// writeStockTable prints the summary, one row per item and the price history
// of the focused item, if any.
func writeStockTable(w io.Writer, result schema.StockResult, cfg *contract.Config) error {
	s := result.Summary
	if _, err := fmt.Fprintf(w, "Total order qty: %s | Average order size: %s | Product classes: %d | Price updates: %d\n",
		schema.FormatCount(s.TotalOrderQty), schema.FormatCount(s.AverageOrderSize), s.ProductClasses, s.PriceUpdates); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Stock Code", "Description", "Class", "Ordered", "On Hand", "Level", "Supplier"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxDesc := GetMaxTextWidth(cfg, 90)
	var data [][]string
	for _, item := range result.Items {
		level := paint(cfg, func() string { return contract.GetStockLevelColorLabel(item.Level) }, string(item.Level))
		data = append(data, []string{
			item.StockCode,
			contract.TruncateText(item.Description, maxDesc),
			item.ProductClass,
			schema.FormatCount(item.TotalOrderQty),
			schema.FormatCount(item.TotalQtyOnHand),
			level,
			contract.TruncateText(item.Supplier, 20),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.Focus == "" {
		return nil
	}
	for _, item := range result.Items {
		if strings.EqualFold(item.StockCode, result.Focus) {
			return writePriceHistory(w, item, cfg)
		}
	}
	_, err := fmt.Fprintf(w, "Stock item %s is not among the top stock items\n", result.Focus)
	return err
}

// writePriceHistory prints the details and the price changes of one item, newest first.
func writePriceHistory(w io.Writer, item schema.EnrichedStockItem, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "\n%s: %s\n", item.StockCode, item.Description); err != nil {
		return err
	}
	if item.WarehouseDetails != "" {
		if _, err := fmt.Fprintf(w, "Warehouses: %s\n", item.WarehouseDetails); err != nil {
			return err
		}
	}
	for _, entry := range item.PriceEntries {
		if _, err := fmt.Fprintf(w, "  • %s\n", entry); err != nil {
			return err
		}
	}
	if len(item.PriceHistory) == 0 {
		_, err := fmt.Fprintln(w, "No price history available.")
		return err
	}

	fmtFloat, _ := createFormatters(cfg.Precision)
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Date Changed", "Price Code", "Old Price", "New Price"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, h := range item.PriceHistory {
		data = append(data, []string{h.DateChanged, h.PriceCode, fmtFloat(h.OldPrice), fmtFloat(h.NewPrice)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeCSVResultsForStock(w io.Writer, result schema.StockResult) error {
	header := []string{
		"stock_code", "description", "product_class", "supplier",
		"total_order_qty", "total_qty_on_hand", "level", "price_updates",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, item := range result.Items {
			row := []string{
				item.StockCode,
				item.Description,
				item.ProductClass,
				item.Supplier,
				strconv.FormatFloat(item.TotalOrderQty, 'f', -1, 64),
				strconv.FormatFloat(item.TotalQtyOnHand, 'f', -1, 64),
				string(item.Level),
				strconv.Itoa(len(item.PriceHistory)),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
