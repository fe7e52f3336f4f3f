package service

import (
	"context"
	"fmt"
	"strings"

	"agrotrack/internal/models"
)

// RegistryService manages the plain entity collections of the aggregate:
// farm identity, machines, collaborators, fuel prices and warehouse catalog.
type RegistryService struct {
	state *farmState
}

func NewRegistryService(state *farmState) *RegistryService {
	return &RegistryService{state: state}
}

func (s *RegistryService) SetFarmName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidf("name", "must not be empty")
	}
	return s.state.mutate(ctx, OpFarmRename, "farm renamed to "+name, func(farm *models.Farm) error {
		farm.Name = name
		return nil
	})
}

func (s *RegistryService) AddMachine(ctx context.Context, spec MachineSpec) (models.Machine, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.Machine{}, invalidf("name", "must not be empty")
	}
	if !knownMachineType(spec.Type) {
		return models.Machine{}, invalidf("type", "unknown machine type %q", spec.Type)
	}
	if spec.HourMeter < 0 {
		return models.Machine{}, invalidf("hour_meter", "must not be negative")
	}
	status := spec.Status
	if status == "" {
		status = models.StatusActive
	}
	if !knownMachineStatus(status) {
		return models.Machine{}, invalidf("status", "unknown status %q", spec.Status)
	}
	if spec.DefaultFuelType != "" && !knownFuelType(spec.DefaultFuelType) {
		return models.Machine{}, invalidf("default_fuel_type", "unknown fuel type %q", spec.DefaultFuelType)
	}

	machine := models.Machine{
		ID:              s.state.newID(),
		Name:            strings.TrimSpace(spec.Name),
		Type:            spec.Type,
		BrandModel:      spec.BrandModel,
		Year:            spec.Year,
		SerialNumber:    spec.SerialNumber,
		HourMeter:       spec.HourMeter,
		Status:          status,
		CollaboratorID:  spec.CollaboratorID,
		Notes:           spec.Notes,
		DefaultFuelType: spec.DefaultFuelType,
		Config:          spec.Config,
		LastMaintenance: spec.LastMaintenance,
	}

	err := s.state.mutate(ctx, OpMachineAdd, "machine added: "+machine.Name, func(farm *models.Farm) error {
		if machine.CollaboratorID != "" && findCollaborator(farm, machine.CollaboratorID) == nil {
			return &NotFoundError{Kind: "collaborator", ID: machine.CollaboratorID}
		}
		farm.Machines = append(farm.Machines, machine)
		return nil
	})
	if err != nil {
		return models.Machine{}, err
	}
	return machine, nil
}

// UpdateMachine replaces the stored machine wholesale. Historical events and
// ledger entries are untouched; a manual hour-meter change here bypasses the
// ledger on purpose (direct correction by an administrator).
func (s *RegistryService) UpdateMachine(ctx context.Context, machine models.Machine) error {
	if strings.TrimSpace(machine.Name) == "" {
		return invalidf("name", "must not be empty")
	}
	if !knownMachineStatus(machine.Status) {
		return invalidf("status", "unknown status %q", machine.Status)
	}
	return s.state.mutate(ctx, OpMachineUpdate, "machine updated: "+machine.Name, func(farm *models.Farm) error {
		existing := findMachine(farm, machine.ID)
		if existing == nil {
			return &NotFoundError{Kind: "machine", ID: machine.ID}
		}
		*existing = machine
		return nil
	})
}

// DeleteMachine removes the machine only. Its fuel and maintenance events
// remain in the aggregate: history is never cascaded away.
func (s *RegistryService) DeleteMachine(ctx context.Context, id string) error {
	return s.state.mutate(ctx, OpMachineDelete, "machine deleted: "+id, func(farm *models.Farm) error {
		for i := range farm.Machines {
			if farm.Machines[i].ID == id {
				farm.Machines = append(farm.Machines[:i], farm.Machines[i+1:]...)
				return nil
			}
		}
		return &NotFoundError{Kind: "machine", ID: id}
	})
}

func (s *RegistryService) AddCollaborator(ctx context.Context, spec CollaboratorSpec) (models.Collaborator, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.Collaborator{}, invalidf("name", "must not be empty")
	}
	if strings.TrimSpace(spec.Role) == "" {
		return models.Collaborator{}, invalidf("role", "must not be empty")
	}

	collab := models.Collaborator{
		ID:          s.state.newID(),
		Name:        strings.TrimSpace(spec.Name),
		Role:        strings.TrimSpace(spec.Role),
		Contact:     spec.Contact,
		Assignments: spec.Assignments,
	}

	err := s.state.mutate(ctx, OpCollaboratorAdd, "collaborator added: "+collab.Name, func(farm *models.Farm) error {
		farm.Collaborators = append(farm.Collaborators, collab)
		return nil
	})
	if err != nil {
		return models.Collaborator{}, err
	}
	return collab, nil
}

// SetFuelPrices replaces the configured price list.
func (s *RegistryService) SetFuelPrices(ctx context.Context, prices []models.FuelPrice) error {
	for _, p := range prices {
		if !knownFuelType(p.FuelType) {
			return invalidf("fuel_type", "unknown fuel type %q", p.FuelType)
		}
		if p.Price < 0 {
			return invalidf("price", "must not be negative for %s", p.FuelType)
		}
	}
	return s.state.mutate(ctx, OpFuelPricesSet, fmt.Sprintf("%d fuel prices set", len(prices)), func(farm *models.Farm) error {
		farm.FuelPrices = append([]models.FuelPrice(nil), prices...)
		return nil
	})
}

func (s *RegistryService) AddWarehouseItem(ctx context.Context, spec WarehouseItemSpec) (models.WarehouseItem, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.WarehouseItem{}, invalidf("name", "must not be empty")
	}
	code := strings.TrimSpace(spec.Code)
	if code == "" {
		return models.WarehouseItem{}, invalidf("code", "must not be empty")
	}
	if spec.UnitValue < 0 {
		return models.WarehouseItem{}, invalidf("unit_value", "must not be negative")
	}
	if spec.StockQuantity < 0 {
		return models.WarehouseItem{}, invalidf("stock_quantity", "must not be negative")
	}

	now := s.state.now()
	item := models.WarehouseItem{
		ID:        s.state.newID(),
		Name:      strings.TrimSpace(spec.Name),
		Code:      code,
		UnitValue: spec.UnitValue,
		CreatedAt: now,
	}
	if spec.StockQuantity > 0 {
		applyMovement(&item, spec.StockQuantity, stockReasonInitial, "", now)
	}

	err := s.state.mutate(ctx, OpWarehouseAdd, "warehouse item added: "+item.Name, func(farm *models.Farm) error {
		for i := range farm.WarehouseItems {
			if farm.WarehouseItems[i].Code == code {
				return invalidf("code", "%q already in use", code)
			}
		}
		farm.WarehouseItems = append(farm.WarehouseItems, item)
		return nil
	})
	if err != nil {
		return models.WarehouseItem{}, err
	}
	return item, nil
}

// UpdateWarehouseItem updates catalog fields; creation time and movement
// history are preserved from the stored item. A changed on-hand quantity is
// recorded as a manual adjustment movement.
func (s *RegistryService) UpdateWarehouseItem(ctx context.Context, item models.WarehouseItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return invalidf("name", "must not be empty")
	}
	code := strings.TrimSpace(item.Code)
	if code == "" {
		return invalidf("code", "must not be empty")
	}
	if item.UnitValue < 0 {
		return invalidf("unit_value", "must not be negative")
	}

	return s.state.mutate(ctx, OpWarehouseUpdate, "warehouse item updated: "+item.Name, func(farm *models.Farm) error {
		existing := findItem(farm, item.ID)
		if existing == nil {
			return &NotFoundError{Kind: "warehouse item", ID: item.ID}
		}
		for i := range farm.WarehouseItems {
			if farm.WarehouseItems[i].ID != item.ID && farm.WarehouseItems[i].Code == code {
				return invalidf("code", "%q already in use", code)
			}
		}

		existing.Name = strings.TrimSpace(item.Name)
		existing.Code = code
		existing.UnitValue = item.UnitValue
		if change := item.StockQuantity - existing.StockQuantity; change != 0 {
			applyMovement(existing, change, stockReasonAdjustment, "", s.state.now())
		}
		return nil
	})
}

func (s *RegistryService) DeleteWarehouseItem(ctx context.Context, id string) error {
	return s.state.mutate(ctx, OpWarehouseDelete, "warehouse item deleted: "+id, func(farm *models.Farm) error {
		for i := range farm.WarehouseItems {
			if farm.WarehouseItems[i].ID == id {
				farm.WarehouseItems = append(farm.WarehouseItems[:i], farm.WarehouseItems[i+1:]...)
				return nil
			}
		}
		return &NotFoundError{Kind: "warehouse item", ID: id}
	})
}

// MachineByID returns a copy of the machine, if present.
func (s *RegistryService) MachineByID(id string) (models.Machine, bool) {
	farm := s.state.snapshot()
	if m := findMachine(&farm, id); m != nil {
		return *m, true
	}
	return models.Machine{}, false
}

// CollaboratorByID returns a copy of the collaborator, if present.
func (s *RegistryService) CollaboratorByID(id string) (models.Collaborator, bool) {
	farm := s.state.snapshot()
	if c := findCollaborator(&farm, id); c != nil {
		return *c, true
	}
	return models.Collaborator{}, false
}

// Snapshot returns a deep copy of the whole aggregate for reporting reads.
func (s *RegistryService) Snapshot() models.Farm {
	return s.state.snapshot()
}

func findMachine(farm *models.Farm, id string) *models.Machine {
	for i := range farm.Machines {
		if farm.Machines[i].ID == id {
			return &farm.Machines[i]
		}
	}
	return nil
}

func findCollaborator(farm *models.Farm, id string) *models.Collaborator {
	for i := range farm.Collaborators {
		if farm.Collaborators[i].ID == id {
			return &farm.Collaborators[i]
		}
	}
	return nil
}

func findItem(farm *models.Farm, id string) *models.WarehouseItem {
	for i := range farm.WarehouseItems {
		if farm.WarehouseItems[i].ID == id {
			return &farm.WarehouseItems[i]
		}
	}
	return nil
}
