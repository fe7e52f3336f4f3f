package models

import "time"

// FuelType is the kind of fuel dispensed.
type FuelType string

const (
	FuelDieselS10  FuelType = "DIESEL_S10"
	FuelDieselS500 FuelType = "DIESEL_S500"
	FuelGasoline   FuelType = "GASOLINE"
)

// FuelEvent records one fueling of a machine. Odometer is the hour-meter
// reading observed at the pump; it is a candidate ledger observation and is
// applied only when it exceeds the machine's current counter.
type FuelEvent struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	MachineID      string    `json:"machine_id"`
	CollaboratorID string    `json:"collaborator_id"`
	FuelType       FuelType  `json:"fuel_type"`
	Quantity       float64   `json:"quantity"`    // liters
	TotalValue     float64   `json:"total_value"` // currency
	Odometer       float64   `json:"odometer"`    // hour-meter reading
	Observations   string    `json:"observations,omitempty"`
}

// MaintenanceType is the category of service performed.
type MaintenanceType string

const (
	MaintOilChange    MaintenanceType = "OIL_CHANGE"
	MaintFilterChange MaintenanceType = "FILTER_CHANGE"
	MaintOilAndFilter MaintenanceType = "OIL_AND_FILTER"
	MaintPreventive   MaintenanceType = "PREVENTIVE"
	MaintCorrective   MaintenanceType = "CORRECTIVE"
)

// PartUsage is a warehouse item consumed by a maintenance event.
type PartUsage struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

// MaintenanceEvent records one service performed on a machine.
type MaintenanceEvent struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	MachineID      string          `json:"machine_id"`
	CollaboratorID string          `json:"collaborator_id"`
	Type           MaintenanceType `json:"type"`
	HourMeter      float64         `json:"hour_meter"`
	TotalCost      float64         `json:"total_cost"` // labor and other costs, parts excluded
	Notes          string          `json:"notes,omitempty"`
	PartsUsed      []PartUsage     `json:"parts_used,omitempty"`
}
