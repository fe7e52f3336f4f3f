package service

import (
	"time"

	"agrotrack/internal/models"
)

// MachineSpec describes a machine to be created. The id is assigned by the
// engine.
type MachineSpec struct {
	Name            string
	Type            models.MachineType
	BrandModel      string
	Year            int
	SerialNumber    string
	HourMeter       float64
	Status          models.MachineStatus // empty defaults to ACTIVE
	CollaboratorID  string
	Notes           string
	DefaultFuelType models.FuelType
	Config          *models.MaintenanceConfig
	LastMaintenance *models.LastMaintenance
}

// CollaboratorSpec describes a collaborator to be created.
type CollaboratorSpec struct {
	Name        string
	Role        string
	Contact     string
	Assignments string
}

// WarehouseItemSpec describes a warehouse item to be created.
type WarehouseItemSpec struct {
	Name          string
	Code          string
	UnitValue     float64
	StockQuantity float64
}

// FuelEventInput carries a new fueling record. CollaboratorID identifies the
// acting collaborator supplied by the shell; the engine only attributes.
type FuelEventInput struct {
	Date           time.Time // zero defaults to now
	MachineID      string
	CollaboratorID string
	FuelType       models.FuelType
	Quantity       float64 // liters, > 0
	TotalValue     float64 // currency, > 0
	Odometer       float64 // hour-meter reading, > 0
	Observations   string
}

// MaintenanceEventInput carries a new maintenance record.
type MaintenanceEventInput struct {
	Date           time.Time // zero defaults to now
	MachineID      string
	CollaboratorID string
	Type           models.MaintenanceType
	HourMeter      float64 // hour-meter reading, > 0
	TotalCost      float64 // labor and other costs, >= 0
	Notes          string
	PartsUsed      []models.PartUsage
}

// LogFilter narrows an audit trail listing by time range and operation.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Op   string    // "", or an operation tag such as "FUEL_RECORD"
}

func knownFuelType(ft models.FuelType) bool {
	switch ft {
	case models.FuelDieselS10, models.FuelDieselS500, models.FuelGasoline:
		return true
	}
	return false
}

func knownMachineType(t models.MachineType) bool {
	switch t {
	case models.MachineTractor, models.MachineHarvester, models.MachinePlanter,
		models.MachineSprayer, models.MachineImplement, models.MachineTruck:
		return true
	}
	return false
}

func knownMachineStatus(s models.MachineStatus) bool {
	switch s {
	case models.StatusActive, models.StatusInactive, models.StatusInMaintenance:
		return true
	}
	return false
}

func knownMaintenanceType(t models.MaintenanceType) bool {
	switch t {
	case models.MaintOilChange, models.MaintFilterChange, models.MaintOilAndFilter,
		models.MaintPreventive, models.MaintCorrective:
		return true
	}
	return false
}
