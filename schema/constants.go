package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// View represents one section of the dashboard.
	View string

	// FilterKey represents a query parameter accepted by the filtered endpoints.
	FilterKey string

	// OrderState represents the shipping state of an order line.
	OrderState string

	// StockLevel represents how well an item is stocked relative to demand.
	StockLevel string

	// Direction represents the sign of a change.
	Direction string

	// CacheBackend represents the backend used for response caching.
	CacheBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
)

// All dashboard views.
const (
	StatusView  View = "status"
	FiltersView View = "filters"
	TrendView   View = "trend"
	OrdersView  View = "orders"
	StockView   View = "stock"
	ClassesView View = "classes"
)

// Filter keys in the order the service documents them.
const (
	FilterBranch       FilterKey = "branch"
	FilterArea         FilterKey = "area"
	FilterCustomer     FilterKey = "customer"
	FilterProductClass FilterKey = "product_class"
	FilterSalesperson  FilterKey = "salesperson"
)

// Order line states.
const (
	CompletedState  OrderState = "Completed"
	BackOrderState  OrderState = "Back Order"
	InProgressState OrderState = "In Progress"
)

// Stock levels.
const (
	WellStocked  StockLevel = "Well Stocked"
	MediumStock  StockLevel = "Medium Stock"
	LowStock     StockLevel = "Low Stock"
	UnknownStock StockLevel = "Unknown"
)

// Change directions.
const (
	Up   Direction = "up"
	Down Direction = "down"
	Flat Direction = "flat"
)

// All cache backends supported.
const (
	MemoryBackend CacheBackend = "memory" // default
	NoneBackend   CacheBackend = "none"
)

// Defaults shared by the CLI and the MCP server.
const (
	DefaultPerPage    = 50
	MaxPerPage        = 500
	DefaultReportName = "comprehensive_order_report.xlsx"
)

// AllViews lists every dashboard view in display order.
var AllViews = []View{StatusView, FiltersView, TrendView, OrdersView, StockView, ClassesView}

// AllFilterKeys lists every filter key in display order.
var AllFilterKeys = []FilterKey{FilterBranch, FilterArea, FilterCustomer, FilterProductClass, FilterSalesperson}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
}

// ValidViews lists all valid dashboard views.
var ValidViews = map[View]struct{}{
	StatusView:  {},
	FiltersView: {},
	TrendView:   {},
	OrdersView:  {},
	StockView:   {},
	ClassesView: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	MemoryBackend: {},
	NoneBackend:   {},
}
