package models

import "time"

// MachineType classifies the kind of equipment.
type MachineType string

const (
	MachineTractor   MachineType = "TRACTOR"
	MachineHarvester MachineType = "HARVESTER"
	MachinePlanter   MachineType = "PLANTER"
	MachineSprayer   MachineType = "SPRAYER"
	MachineImplement MachineType = "IMPLEMENT"
	MachineTruck     MachineType = "TRUCK"
)

// MachineStatus is the operational status of a machine.
type MachineStatus string

const (
	StatusActive        MachineStatus = "ACTIVE"
	StatusInactive      MachineStatus = "INACTIVE"
	StatusInMaintenance MachineStatus = "IN_MAINTENANCE"
)

// HourMeterSource tags which kind of record produced an hour-meter observation.
type HourMeterSource string

const (
	SourceFueling     HourMeterSource = "FUELING"
	SourceMaintenance HourMeterSource = "MAINTENANCE"
	SourceManual      HourMeterSource = "MANUAL"
)

// MaintenanceConfig holds the configured service interval, in hour-meter
// units, for each monitored category. A zero or negative interval means the
// category is not monitored.
type MaintenanceConfig struct {
	EngineOilHours       float64 `json:"engine_oil_hours"`
	TransmissionOilHours float64 `json:"transmission_oil_hours"`
	FuelFilterHours      float64 `json:"fuel_filter_hours"`
	AirFilterHours       float64 `json:"air_filter_hours"`
}

// LastMaintenance records the hour-meter value at which each category was
// last serviced. Values never decrease.
type LastMaintenance struct {
	EngineOilHour       float64 `json:"engine_oil_hour"`
	TransmissionOilHour float64 `json:"transmission_oil_hour"`
	FuelFilterHour      float64 `json:"fuel_filter_hour"`
	AirFilterHour       float64 `json:"air_filter_hour"`
}

// HourMeterLogEntry is one observation in a machine's hour-meter ledger.
// Entries are append-only; only an edit of the originating event may change
// an entry's value or date, in place.
type HourMeterLogEntry struct {
	Date           time.Time       `json:"date"`
	Value          float64         `json:"value"`
	CollaboratorID string          `json:"collaborator_id"`
	Source         HourMeterSource `json:"source"`
	SourceID       string          `json:"source_id"`
}

// Machine is a piece of mechanical equipment tracked by the engine.
// HourMeter is canonical and monotonic: it equals the most recent accepted
// ledger observation and only a revision of a past event may lower it.
type Machine struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Type             MachineType         `json:"type"`
	BrandModel       string              `json:"brand_model,omitempty"`
	Year             int                 `json:"year,omitempty"`
	SerialNumber     string              `json:"serial_number,omitempty"`
	HourMeter        float64             `json:"hour_meter"`
	Status           MachineStatus       `json:"status"`
	CollaboratorID   string              `json:"collaborator_id,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	DefaultFuelType  FuelType            `json:"default_fuel_type,omitempty"`
	Config           *MaintenanceConfig  `json:"maintenance_config,omitempty"`
	LastMaintenance  *LastMaintenance    `json:"last_maintenance,omitempty"`
	HourMeterHistory []HourMeterLogEntry `json:"hour_meter_history,omitempty"`
}
