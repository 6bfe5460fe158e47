package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/iocache"
	"github.com/huangsam/orderpulse/schema"
)

// WriteReportDownload describes a saved report in the configured format.
func WriteReportDownload(w io.Writer, result schema.ReportDownload, cfg *contract.Config, duration time.Duration) error {
	return dispatchOutput(w, cfg, result, outputFuncs{
		csv: func(w io.Writer) error {
			header := []string{"file_name", "path", "content_type", "bytes"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.Write([]string{result.FileName, result.Path, result.ContentType, strconv.FormatInt(result.Bytes, 10)})
			})
		},
		text: func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Saved %s to %s (%s)\n", result.FileName, result.Path, humanize.Bytes(uint64(max(result.Bytes, 0)))); err != nil {
				return err
			}
			return writeFooter(w, "Report download", cfg, duration)
		},
	})
}

// WriteCacheStatus outputs the response cache status in the configured format.
func WriteCacheStatus(w io.Writer, status schema.CacheStatus, cfg *contract.Config) error {
	return dispatchOutput(w, cfg, status, outputFuncs{
		csv: func(w io.Writer) error {
			header := []string{"backend", "ttl", "total_entries", "hits", "misses", "shared"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.Write([]string{
					string(status.Backend),
					status.TTL.String(),
					strconv.Itoa(status.TotalEntries),
					strconv.FormatInt(status.Hits, 10),
					strconv.FormatInt(status.Misses, 10),
					strconv.FormatInt(status.Shared, 10),
				})
			})
		},
		text: func(w io.Writer) error {
			iocache.PrintCacheStatus(w, status)
			return nil
		},
	})
}

// PrintCacheStatus writes the cache status to stdout or the configured output file.
func PrintCacheStatus(status schema.CacheStatus, cfg *contract.Config) error {
	return printResults(cfg, func(w io.Writer) error {
		return WriteCacheStatus(w, status, cfg)
	}, "Wrote cache status")
}
