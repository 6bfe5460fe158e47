package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/parquet"
	"github.com/huangsam/orderpulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteOrderDetails outputs one page of order details in the configured format.
func WriteOrderDetails(w io.Writer, result schema.OrderDetailsResult, cfg *contract.Config, duration time.Duration) error {
	return dispatchOutput(w, cfg, result, outputFuncs{
		csv: func(w io.Writer) error { return writeCSVResultsForOrders(w, result) },
		text: func(w io.Writer) error {
			if err := writeOrdersTable(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, "Order details", cfg, duration)
		},
		parquet: func(path string) error {
			return parquet.WriteOrdersParquet(parquet.OrderLines(result), path)
		},
	})
}

// PrintOrderDetails writes the order details to stdout or the configured output file.
func PrintOrderDetails(result schema.OrderDetailsResult, cfg *contract.Config, duration time.Duration) error {
	return printResults(cfg, func(w io.Writer) error {
		return WriteOrderDetails(w, result, cfg, duration)
	}, "Wrote order details")
}

// writeOrdersTable prints the order lines with their status badge and the pagination footer.
func writeOrdersTable(w io.Writer, result schema.OrderDetailsResult, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Order details (filters: %s)\n", result.Filters); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"SOR", "Line", "Date", "Customer", "Stock", "Ordered", "Shipped", "Back Order", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxCustomer := GetMaxTextWidth(cfg, 100)
	var data [][]string
	for _, o := range result.Orders {
		state := paint(cfg, func() string { return contract.GetOrderStateColorLabel(o.State) }, string(o.State))
		data = append(data, []string{
			o.SorID,
			strconv.Itoa(o.SorLine),
			o.OrderDate,
			contract.TruncateText(o.CustomerName, maxCustomer),
			o.StockCode,
			schema.FormatCount(o.OrderQty),
			schema.FormatCount(o.ShipQty),
			schema.FormatCount(o.BackOrderQty),
			state,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %s to %s of %s entries\n",
		schema.FormatCount(float64(result.ShowingFrom)),
		schema.FormatCount(float64(result.ShowingTo)),
		schema.FormatCount(float64(result.Pagination.TotalCount))); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Page %d of %d: %s\n", result.Pagination.Page, result.Pagination.TotalPages, formatPageItems(result.Pages))
	return err
}

func writeCSVResultsForOrders(w io.Writer, result schema.OrderDetailsResult) error {
	header := []string{
		"sor_id", "sor_line", "order_date", "branch", "area", "customer_id", "customer_name",
		"salesperson_id", "product_class", "stock_code", "stock_desc",
		"order_qty", "ship_qty", "back_order_qty", "invoice", "state",
	}
	fmtQty := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, o := range result.Orders {
			row := []string{
				o.SorID, strconv.Itoa(o.SorLine), o.OrderDate, o.Branch, o.Area, o.CustomerID, o.CustomerName,
				o.SalespersonID, o.ProductClass, o.StockCode, o.StockDesc,
				fmtQty(o.OrderQty), fmtQty(o.ShipQty), fmtQty(o.BackOrderQty), o.Invoice, string(o.State),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
