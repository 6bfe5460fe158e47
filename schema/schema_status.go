package schema

import "time"

// OrderStatus is one bucket of the order status overview.
type OrderStatus struct {
	StatusCode string     `json:"statusCode" yaml:"status_code"`
	StatusDesc string     `json:"statusDesc" yaml:"status_desc"`
	Count      float64    `json:"count" yaml:"count"`
	Percentage FlexNumber `json:"percentage" yaml:"percentage"`
}

// StatusOverviewResult is the rendered status overview view.
type StatusOverviewResult struct {
	Statuses   []OrderStatus `json:"statuses" yaml:"statuses"`
	TotalCount float64       `json:"total_count" yaml:"total_count"`
}

// ProductClassShare is one slice of the product-class distribution.
type ProductClassShare struct {
	ID         string  `json:"id" yaml:"id"`
	Label      string  `json:"label" yaml:"label"`
	Value      float64 `json:"value" yaml:"value"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// ProductClassDistribution is the payload of the product-class endpoint.
type ProductClassDistribution struct {
	Data            []ProductClassShare `json:"data"`
	TotalPercentage FlexNumber          `json:"totalPercentage"`
}

// ClassDistributionResult is the rendered product-class view.
type ClassDistributionResult struct {
	Classes         []ProductClassShare `json:"classes" yaml:"classes"`
	TotalOrders     float64             `json:"total_orders" yaml:"total_orders"`
	ClassCount      int                 `json:"class_count" yaml:"class_count"`
	TotalPercentage float64             `json:"total_percentage" yaml:"total_percentage"`
}

// ReportDownload describes a saved report.
type ReportDownload struct {
	FileName    string `json:"file_name" yaml:"file_name"`
	Path        string `json:"path" yaml:"path"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Bytes       int64  `json:"bytes" yaml:"bytes"`
}

// CacheStatus holds status information about the response cache.
type CacheStatus struct {
	Backend         CacheBackend  `json:"backend" yaml:"backend"`
	TotalEntries    int           `json:"total_entries" yaml:"total_entries"`
	Hits            int64         `json:"hits" yaml:"hits"`
	Misses          int64         `json:"misses" yaml:"misses"`
	Shared          int64         `json:"shared" yaml:"shared"`
	LastEntryTime   time.Time     `json:"last_entry_time" yaml:"last_entry_time"`
	OldestEntryTime time.Time     `json:"oldest_entry_time" yaml:"oldest_entry_time"`
	TTL             time.Duration `json:"ttl" yaml:"ttl"`
}
