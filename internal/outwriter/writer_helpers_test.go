package outwriter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPageItems(t *testing.T) {
	items := []schema.PageItem{
		{Page: 1},
		{Ellipsis: true},
		{Page: 4},
		{Page: 5, Current: true},
		{Page: 6},
		{Ellipsis: true},
		{Page: 10},
	}
	assert.Equal(t, "1 … 4 [5] 6 … 10", formatPageItems(items))
	assert.Equal(t, "", formatPageItems(nil))
}

func TestSignedFormatting(t *testing.T) {
	assert.Equal(t, "+1,200 units", signedUnits(1200))
	assert.Equal(t, "-20 units", signedUnits(-20))
	assert.Equal(t, "0 units", signedUnits(0))
	assert.Equal(t, "+15.00%", signedPercent(15, 2))
	assert.Equal(t, "-13.3%", signedPercent(-13.33, 1))
}

func TestGetMaxTextWidth(t *testing.T) {
	cfg := &contract.Config{Width: 120}
	assert.Equal(t, 120, GetTermWidth(cfg))
	assert.Equal(t, 40, GetMaxTextWidth(cfg, 80))
	assert.Equal(t, minTextWidth, GetMaxTextWidth(cfg, 200))
	assert.Equal(t, maxTextWidth, GetMaxTextWidth(cfg, 0))
}

func TestDispatchOutputParquetUnsupported(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: "out.parquet"}
	err := WriteStatusResults(&bytes.Buffer{}, schema.StatusOverviewResult{}, cfg, 0)
	assert.ErrorIs(t, err, errParquetUnsupported)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, schema.Change{Value: 20, Percentage: 12.5}))
	assert.Equal(t, "value: 20\npercentage: 12.5\n", buf.String())
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(cw *csv.Writer) error {
		return cw.Write([]string{"1", "x,y"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"x,y\"\n", buf.String())
}

func TestWriteWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path}
	require.NoError(t, PrintClassResults(schema.ClassDistributionResult{ClassCount: 3}, cfg, 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"class_count": 3`)
}
