package service

import (
	"time"

	"agrotrack/internal/models"
)

// Movement reasons recorded in a warehouse item's stock history.
const (
	stockReasonMaintenance = "maintenance"
	stockReasonAdjustment  = "manual adjustment"
	stockReasonInitial     = "initial stock"
)

// applyUsage deducts a consumed quantity from the item and appends the
// movement to its history. There is no sufficiency check here: stock may go
// negative, and it is the caller's job to collect the warning beforehand.
func applyUsage(item *models.WarehouseItem, qty float64, reason, referenceID string, at time.Time) {
	applyMovement(item, -qty, reason, referenceID, at)
}

// applyMovement applies a signed quantity change and records the resulting
// on-hand quantity.
func applyMovement(item *models.WarehouseItem, change float64, reason, referenceID string, at time.Time) {
	item.StockQuantity += change
	item.StockHistory = append(item.StockHistory, models.StockHistoryEntry{
		Date:              at,
		Reason:            reason,
		ReferenceID:       referenceID,
		QuantityChange:    change,
		ResultingQuantity: item.StockQuantity,
	})
}
