// Package schema has the data types shared across orderpulse packages.
package schema

import (
	"fmt"
	"net/url"
	"strings"
)

// Filters is the fixed set of optional filters accepted by the trend and
// order-detail endpoints. A nil field means "All".
type Filters struct {
	Branch       *string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Area         *string `json:"area,omitempty" yaml:"area,omitempty"`
	Customer     *string `json:"customer,omitempty" yaml:"customer,omitempty"`
	ProductClass *string `json:"product_class,omitempty" yaml:"product_class,omitempty"`
	Salesperson  *string `json:"salesperson,omitempty" yaml:"salesperson,omitempty"`
}

// field returns a pointer to the filter slot for key, or nil when the key is unknown.
func (f *Filters) field(key FilterKey) **string {
	switch key {
	case FilterBranch:
		return &f.Branch
	case FilterArea:
		return &f.Area
	case FilterCustomer:
		return &f.Customer
	case FilterProductClass:
		return &f.ProductClass
	case FilterSalesperson:
		return &f.Salesperson
	default:
		return nil
	}
}

// Set assigns value to the filter named key. An empty value clears the filter.
func (f *Filters) Set(key string, value string) error {
	slot := f.field(FilterKey(strings.ToLower(strings.TrimSpace(key))))
	if slot == nil {
		return fmt.Errorf("unknown filter key %q", key)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		*slot = nil
		return nil
	}
	*slot = &value
	return nil
}

// Get returns the value of the filter named key and whether it is set.
func (f Filters) Get(key FilterKey) (string, bool) {
	slot := f.field(key)
	if slot == nil || *slot == nil {
		return "", false
	}
	return **slot, true
}

// Params returns the query parameters for every filter that is set.
func (f Filters) Params() url.Values {
	params := url.Values{}
	for _, key := range AllFilterKeys {
		if v, ok := f.Get(key); ok {
			params.Set(string(key), v)
		}
	}
	return params
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return len(f.Params()) == 0
}

// String renders the active filters as "key=value" pairs, or "All" when none are set.
func (f Filters) String() string {
	var parts []string
	for _, key := range AllFilterKeys {
		if v, ok := f.Get(key); ok {
			parts = append(parts, fmt.Sprintf("%s=%s", key, v))
		}
	}
	if len(parts) == 0 {
		return "All"
	}
	return strings.Join(parts, ", ")
}

// FilterOptions holds the distinct values available for each filter category.
type FilterOptions struct {
	Branch       []string `json:"branch" yaml:"branch"`
	Area         []string `json:"area" yaml:"area"`
	Customer     []string `json:"customer" yaml:"customer"`
	ProductClass []string `json:"product_class" yaml:"product_class"`
	Salesperson  []string `json:"salesperson" yaml:"salesperson"`
}

// FilterCategory is one filter key with its display label and options.
type FilterCategory struct {
	Key     FilterKey `json:"key" yaml:"key"`
	Label   string    `json:"label" yaml:"label"`
	Options []string  `json:"options" yaml:"options"`
}

// Categories returns the categories in display order with nil option lists normalized to empty.
func (o FilterOptions) Categories() []FilterCategory {
	values := map[FilterKey][]string{
		FilterBranch:       o.Branch,
		FilterArea:         o.Area,
		FilterCustomer:     o.Customer,
		FilterProductClass: o.ProductClass,
		FilterSalesperson:  o.Salesperson,
	}
	out := make([]FilterCategory, 0, len(AllFilterKeys))
	for _, key := range AllFilterKeys {
		opts := values[key]
		if opts == nil {
			opts = []string{}
		}
		out = append(out, FilterCategory{Key: key, Label: FilterLabel(string(key)), Options: opts})
	}
	return out
}

// FilterOptionsResult is the rendered filter options view.
type FilterOptionsResult struct {
	Categories []FilterCategory `json:"categories" yaml:"categories"`
}
