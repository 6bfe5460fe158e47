package algo

import "github.com/huangsam/orderpulse/schema"

// OrderStateFor derives the shipping state of an order line.
func OrderStateFor(o schema.OrderDetail) schema.OrderState {
	switch {
	case o.ShipQty == o.OrderQty:
		return schema.CompletedState
	case o.BackOrderQty > 0:
		return schema.BackOrderState
	default:
		return schema.InProgressState
	}
}

// StockLevelFor classifies stock on hand against ordered quantity.
// With nothing ordered, any stock counts as well stocked.
func StockLevelFor(onHand, ordered float64) schema.StockLevel {
	if ordered == 0 {
		if onHand > 0 {
			return schema.WellStocked
		}
		return schema.LowStock
	}
	ratio := onHand / ordered
	switch {
	case ratio > 0.5:
		return schema.WellStocked
	case ratio > 0.2:
		return schema.MediumStock
	default:
		return schema.LowStock
	}
}
