package iocache

import (
	"fmt"
	"io"

	"github.com/huangsam/orderpulse/schema"
)

// PrintCacheStatus prints cache status information.
func PrintCacheStatus(w io.Writer, status schema.CacheStatus) {
	_, _ = fmt.Fprintf(w, "Cache Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "TTL: %s\n", status.TTL)
	_, _ = fmt.Fprintf(w, "Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		_, _ = fmt.Fprintf(w, "Last Entry: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintf(w, "Hits: %d\n", status.Hits)
	_, _ = fmt.Fprintf(w, "Misses: %d\n", status.Misses)
	_, _ = fmt.Fprintf(w, "Shared In-Flight: %d\n", status.Shared)
}
