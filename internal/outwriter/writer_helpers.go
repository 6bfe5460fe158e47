package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/schema"
	"gopkg.in/yaml.v3"
)

// errParquetUnsupported is returned for views that have no tabular parquet layout.
var errParquetUnsupported = errors.New("parquet output is only supported for trend and orders")

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// printResults writes through writeWithFile, except for parquet where the
// writer creates the output file itself.
func printResults(cfg *contract.Config, writer func(io.Writer) error, successMsg string) error {
	if cfg.Output != schema.ParquetOut {
		return writeWithFile(cfg.OutputFile, writer, successMsg)
	}
	if err := writer(io.Discard); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, cfg.OutputFile)
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeYAML encodes data as a YAML document.
func writeYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// outputFuncs holds the format specific renderers of one view.
type outputFuncs struct {
	csv     func(io.Writer) error
	text    func(io.Writer) error
	parquet func(path string) error // nil when the view has no parquet layout
}

// dispatchOutput writes data in the configured output format.
func dispatchOutput(w io.Writer, cfg *contract.Config, data any, fns outputFuncs) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, data); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.YAMLOut:
		if err := writeYAML(w, data); err != nil {
			return fmt.Errorf("error writing YAML output: %w", err)
		}
	case schema.CSVOut:
		if err := fns.csv(w); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if fns.parquet == nil {
			return errParquetUnsupported
		}
		if err := fns.parquet(cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return fns.text(w)
	}
	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtPct func(float64) string) {
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	fmtPct = func(v float64) string {
		return schema.FormatPercent(v, precision)
	}
	return fmtFloat, fmtPct
}

// paint returns the colored text when colors are enabled and the plain text otherwise.
func paint(cfg *contract.Config, colored func() string, plain string) string {
	if cfg.UseColors {
		return colored()
	}
	return plain
}

// signedUnits renders a quantity change as "+20 units" or "-5 units".
func signedUnits(v float64) string {
	if v > 0 {
		return "+" + schema.FormatUnits(v)
	}
	return schema.FormatUnits(v)
}

// signedPercent renders a percentage change with an explicit sign.
func signedPercent(v float64, decimals int) string {
	if v > 0 {
		return "+" + schema.FormatPercent(v, decimals)
	}
	return schema.FormatPercent(v, decimals)
}

// formatPageItems renders a page selector as "1 … 4 [5] 6 … 10".
func formatPageItems(items []schema.PageItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		switch {
		case item.Ellipsis:
			parts = append(parts, "…")
		case item.Current:
			parts = append(parts, fmt.Sprintf("[%d]", item.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", item.Page))
		}
	}
	return strings.Join(parts, " ")
}

// writeFooter prints the elapsed time line shown under every text view.
func writeFooter(w io.Writer, name string, cfg *contract.Config, duration time.Duration) error {
	_, err := fmt.Fprintf(w, "%s completed in %v. Cache backend: %s\n", name, duration, cfg.CacheBackend)
	return err
}
