package schema

// PriceHistory is one price change of a stock item.
type PriceHistory struct {
	DateChanged string  `json:"dateChanged" yaml:"date_changed"`
	NewPrice    float64 `json:"newPrice" yaml:"new_price"`
	OldPrice    float64 `json:"oldPrice" yaml:"old_price"`
	PriceCode   string  `json:"priceCode" yaml:"price_code"`
	TimeChanged float64 `json:"timeChanged" yaml:"time_changed"`
}

// StockItem is one of the top ordered stock items.
type StockItem struct {
	Description      string         `json:"description" yaml:"description"`
	PriceDetails     string         `json:"priceDetails" yaml:"price_details"`
	ProductClass     string         `json:"productClass" yaml:"product_class"`
	StockCode        string         `json:"stockCode" yaml:"stock_code"`
	Supplier         string         `json:"supplier" yaml:"supplier"`
	TotalOrderQty    float64        `json:"totalOrderQty" yaml:"total_order_qty"`
	TotalQtyOnHand   float64        `json:"totalQtyOnHand" yaml:"total_qty_on_hand"`
	WarehouseDetails string         `json:"warehouseDetails" yaml:"warehouse_details"`
	PriceHistory     []PriceHistory `json:"priceHistory" yaml:"price_history"`
}

// StockSummary holds the aggregate statistics over the top stock items.
type StockSummary struct {
	TotalOrderQty    float64 `json:"total_order_qty" yaml:"total_order_qty"`
	AverageOrderSize float64 `json:"average_order_size" yaml:"average_order_size"`
	ProductClasses   int     `json:"product_classes" yaml:"product_classes"`
	PriceUpdates     int     `json:"price_updates" yaml:"price_updates"`
}

// EnrichedStockItem is a stock item with its derived level and parsed details.
type EnrichedStockItem struct {
	StockItem    `yaml:",inline"`
	Level        StockLevel `json:"level" yaml:"level"`
	PriceEntries []string   `json:"price_entries" yaml:"price_entries"`
}

// StockResult is the rendered top stock items view.
type StockResult struct {
	Summary StockSummary        `json:"summary" yaml:"summary"`
	Items   []EnrichedStockItem `json:"items" yaml:"items"`
	Focus   string              `json:"focus,omitempty" yaml:"focus,omitempty"` // stock code whose history is expanded
}
