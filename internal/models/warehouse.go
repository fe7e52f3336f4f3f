package models

import "time"

// StockHistoryEntry is one movement in a warehouse item's stock ledger.
// ResultingQuantity is the on-hand quantity after the movement was applied.
type StockHistoryEntry struct {
	Date              time.Time `json:"date"`
	Reason            string    `json:"reason"`
	ReferenceID       string    `json:"reference_id,omitempty"`
	QuantityChange    float64   `json:"quantity_change"`
	ResultingQuantity float64   `json:"resulting_quantity"`
}

// WarehouseItem is a spare part kept in stock. Code is unique within the
// catalog. StockQuantity may go negative: deductions are not blocked on
// insufficient stock, only warned about.
type WarehouseItem struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Code          string              `json:"code"`
	UnitValue     float64             `json:"unit_value"`
	StockQuantity float64             `json:"stock_quantity"`
	CreatedAt     time.Time           `json:"created_at"`
	StockHistory  []StockHistoryEntry `json:"stock_history,omitempty"`
}
