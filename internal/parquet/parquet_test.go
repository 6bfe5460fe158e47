package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/orderpulse/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendPointStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(TrendPoint))
	for _, colName := range []string{"year_month", "period", "quantity", "filters"} {
		_, ok := s.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestOrderLineStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(OrderLine))
	for _, colName := range []string{"sor_id", "sor_line", "order_qty", "ship_qty", "back_order_qty", "state", "invoice"} {
		_, ok := s.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func readAll[T any](t *testing.T, path string) []T {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[T](file)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return rows[:n]
}

func TestWriteTrendParquet(t *testing.T) {
	branch := "North"
	result := schema.TrendResult{
		Filters: schema.Filters{Branch: &branch},
		TrendMetrics: schema.TrendMetrics{
			Visible: []schema.TimeSeriesPoint{
				{YearMonth: "2024-01", Period: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Quantity: 100},
				{YearMonth: "2024-02", Period: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Quantity: 150},
			},
		},
	}
	outputPath := filepath.Join(t.TempDir(), "trend.parquet")
	require.NoError(t, WriteTrendParquet(TrendPoints(result), outputPath))

	rows := readAll[TrendPoint](t, outputPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-02", rows[1].YearMonth)
	assert.InDelta(t, 150.0, rows[1].Quantity, 0.001)
	assert.Equal(t, "branch=North", rows[0].Filters)
	assert.True(t, rows[0].Period.Equal(result.Visible[0].Period))
}

func TestWriteOrdersParquet(t *testing.T) {
	result := schema.OrderDetailsResult{
		Orders: []schema.EnrichedOrder{
			{OrderDetail: schema.OrderDetail{SorID: "SO1", SorLine: 2, OrderQty: 10, ShipQty: 10, Invoice: "INV-9"}, State: schema.CompletedState},
			{OrderDetail: schema.OrderDetail{SorID: "SO2", SorLine: 1, OrderQty: 5, BackOrderQty: 5}, State: schema.BackOrderState},
		},
	}
	outputPath := filepath.Join(t.TempDir(), "orders.parquet")
	require.NoError(t, WriteOrdersParquet(OrderLines(result), outputPath))

	rows := readAll[OrderLine](t, outputPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "SO1", rows[0].SorID)
	assert.Equal(t, int32(2), rows[0].SorLine)
	assert.Equal(t, "Completed", rows[0].State)
	require.NotNil(t, rows[0].Invoice)
	assert.Equal(t, "INV-9", *rows[0].Invoice)
	assert.Nil(t, rows[1].Invoice)
	assert.Equal(t, "Back Order", rows[1].State)
}

func TestWriteEmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteTrendParquet([]TrendPoint{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Empty(t, readAll[TrendPoint](t, outputPath))
}

func TestWriteInvalidPath(t *testing.T) {
	err := WriteOrdersParquet(nil, filepath.Join(t.TempDir(), "missing", "orders.parquet"))
	assert.ErrorContains(t, err, "failed to create output file")
}
