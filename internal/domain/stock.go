package domain

import "github.com/shopspring/decimal"

// InventoryItem holds replenishment settings of a stocked item.
type InventoryItem struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	ReorderLevel    decimal.Decimal `json:"reorder_level"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
}

// StockRecord holds the quantities of an item at one location.
type StockRecord struct {
	ItemID     string          `json:"item_id"`
	LocationID string          `json:"location_id"`
	OnHand     decimal.Decimal `json:"quantity_on_hand"`
	Reserved   decimal.Decimal `json:"quantity_reserved"`
}

// Available returns on-hand minus reserved quantity.
func (s StockRecord) Available() decimal.Decimal {
	return s.OnHand.Sub(s.Reserved)
}

// LowStockItem is an item at or below its reorder level.
type LowStockItem struct {
	Item              InventoryItem   `json:"item"`
	Available         decimal.Decimal `json:"quantity_available"`
	SuggestedQuantity decimal.Decimal `json:"suggested_quantity"`
}
