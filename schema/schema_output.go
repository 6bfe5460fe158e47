package schema

import "time"

// DashboardSection holds the outcome of one view. Exactly one of the payload
// fields is set when Error is empty.
type DashboardSection struct {
	View    View                     `json:"view" yaml:"view"`
	Error   string                   `json:"error,omitempty" yaml:"error,omitempty"`
	Status  *StatusOverviewResult    `json:"status,omitempty" yaml:"status,omitempty"`
	Filters *FilterOptionsResult     `json:"filters,omitempty" yaml:"filters,omitempty"`
	Trend   *TrendResult             `json:"trend,omitempty" yaml:"trend,omitempty"`
	Orders  *OrderDetailsResult      `json:"orders,omitempty" yaml:"orders,omitempty"`
	Stock   *StockResult             `json:"stock,omitempty" yaml:"stock,omitempty"`
	Classes *ClassDistributionResult `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// Failed reports whether the section could not be loaded.
func (s DashboardSection) Failed() bool {
	return s.Error != ""
}

// DashboardResult is the combined output of every requested view.
type DashboardResult struct {
	GeneratedAt time.Time          `json:"generated_at" yaml:"generated_at"`
	Sections    []DashboardSection `json:"sections" yaml:"sections"`
}

// FailedCount returns the number of sections that could not be loaded.
func (d DashboardResult) FailedCount() int {
	n := 0
	for _, s := range d.Sections {
		if s.Failed() {
			n++
		}
	}
	return n
}
