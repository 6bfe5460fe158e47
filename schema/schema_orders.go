package schema

// OrderDetail is one sales order line.
type OrderDetail struct {
	Area            string  `json:"area" yaml:"area"`
	BackOrderQty    float64 `json:"backOrderQty" yaml:"back_order_qty"`
	Branch          string  `json:"branch" yaml:"branch"`
	CustomerID      string  `json:"customerID" yaml:"customer_id"`
	CustomerName    string  `json:"customerName" yaml:"customer_name"`
	Invoice         string  `json:"invoice" yaml:"invoice"`
	LineType        string  `json:"lineType" yaml:"line_type"`
	MasterAccount   string  `json:"masterAccount" yaml:"master_account"`
	OrderDate       string  `json:"orderDate" yaml:"order_date"`
	OrderQty        float64 `json:"orderQty" yaml:"order_qty"`
	ProductClass    string  `json:"productClass" yaml:"product_class"`
	SalespersonID   string  `json:"salespersonID" yaml:"salesperson_id"`
	ShipQty         float64 `json:"shipQty" yaml:"ship_qty"`
	ShippingAddress string  `json:"shippingAddress" yaml:"shipping_address"`
	ShortName       string  `json:"shortName" yaml:"short_name"`
	SorID           string  `json:"sorID" yaml:"sor_id"`
	SorLine         int     `json:"sorLine" yaml:"sor_line"`
	StockCode       string  `json:"stockCode" yaml:"stock_code"`
	StockDesc       string  `json:"stockDesc" yaml:"stock_desc"`
}

// Pagination is the page metadata returned with order details.
type Pagination struct {
	Page       int `json:"page" yaml:"page"`
	TotalPages int `json:"totalPages" yaml:"total_pages"`
	TotalCount int `json:"totalCount" yaml:"total_count"`
}

// OrderDetailPage is one page of order details.
type OrderDetailPage struct {
	Data       []OrderDetail `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// EnrichedOrder is an order line with its derived state.
type EnrichedOrder struct {
	OrderDetail `yaml:",inline"`
	State       OrderState `json:"state" yaml:"state"`
}

// PageItem is one entry of a page selector; Ellipsis items carry no page number.
type PageItem struct {
	Page     int  `json:"page,omitempty" yaml:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty" yaml:"current,omitempty"`
}

// OrderDetailsResult is the rendered order details view.
type OrderDetailsResult struct {
	Filters     Filters         `json:"filters" yaml:"filters"`
	Orders      []EnrichedOrder `json:"orders" yaml:"orders"`
	Pagination  Pagination      `json:"pagination" yaml:"pagination"`
	PerPage     int             `json:"per_page" yaml:"per_page"`
	ShowingFrom int             `json:"showing_from" yaml:"showing_from"`
	ShowingTo   int             `json:"showing_to" yaml:"showing_to"`
	Pages       []PageItem      `json:"pages" yaml:"pages"`
}
