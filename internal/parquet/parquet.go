// Package parquet exports trend and order-detail views to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/orderpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// TrendPoint is one visible month of the order-quantity trend.
type TrendPoint struct {
	// YearMonth is the month as delivered by the service, e.g. "2024-03"
	YearMonth string `parquet:"year_month,snappy"`

	// Period is the first day of the month in UTC
	Period time.Time `parquet:"period,snappy"`

	// Quantity is the total ordered quantity for the month
	Quantity float64 `parquet:"quantity,snappy"`

	// Filters holds the active filters rendered as "key=value" pairs
	Filters string `parquet:"filters,snappy"`
}

// OrderLine is one order detail row with its derived state.
type OrderLine struct {
	SorID         string  `parquet:"sor_id,snappy"`
	SorLine       int32   `parquet:"sor_line,snappy"`
	OrderDate     string  `parquet:"order_date,snappy"`
	Branch        string  `parquet:"branch,snappy"`
	Area          string  `parquet:"area,snappy"`
	CustomerID    string  `parquet:"customer_id,snappy"`
	CustomerName  string  `parquet:"customer_name,snappy"`
	SalespersonID string  `parquet:"salesperson_id,snappy"`
	ProductClass  string  `parquet:"product_class,snappy"`
	StockCode     string  `parquet:"stock_code,snappy"`
	StockDesc     string  `parquet:"stock_desc,snappy"`
	OrderQty      float64 `parquet:"order_qty,snappy"`
	ShipQty       float64 `parquet:"ship_qty,snappy"`
	BackOrderQty  float64 `parquet:"back_order_qty,snappy"`
	State         string  `parquet:"state,snappy"`

	// Invoice is empty until the line is invoiced
	Invoice *string `parquet:"invoice,optional,snappy"`
}

// TrendPoints converts the visible window of a trend result into rows.
func TrendPoints(result schema.TrendResult) []TrendPoint {
	filters := result.Filters.String()
	rows := make([]TrendPoint, 0, len(result.Visible))
	for _, p := range result.Visible {
		rows = append(rows, TrendPoint{
			YearMonth: p.YearMonth,
			Period:    p.Period,
			Quantity:  p.Quantity,
			Filters:   filters,
		})
	}
	return rows
}

// OrderLines converts one page of order details into rows.
func OrderLines(result schema.OrderDetailsResult) []OrderLine {
	rows := make([]OrderLine, 0, len(result.Orders))
	for _, o := range result.Orders {
		row := OrderLine{
			SorID:         o.SorID,
			SorLine:       int32(o.SorLine),
			OrderDate:     o.OrderDate,
			Branch:        o.Branch,
			Area:          o.Area,
			CustomerID:    o.CustomerID,
			CustomerName:  o.CustomerName,
			SalespersonID: o.SalespersonID,
			ProductClass:  o.ProductClass,
			StockCode:     o.StockCode,
			StockDesc:     o.StockDesc,
			OrderQty:      o.OrderQty,
			ShipQty:       o.ShipQty,
			BackOrderQty:  o.BackOrderQty,
			State:         string(o.State),
		}
		if o.Invoice != "" {
			invoice := o.Invoice
			row.Invoice = &invoice
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteTrendParquet writes trend rows to a Parquet file.
func WriteTrendParquet(data []TrendPoint, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteOrdersParquet writes order rows to a Parquet file.
func WriteOrdersParquet(data []OrderLine, outputPath string) error {
	return writeRows(data, outputPath)
}

// writeRows writes rows with a schema inferred from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
