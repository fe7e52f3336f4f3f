package service

import (
	"context"
	"time"

	"agrotrack/internal/logger"
	"agrotrack/internal/models"
	"agrotrack/internal/repository"
)

// Registry manages the plain entity collections: farm identity, machines,
// collaborators, fuel prices and the warehouse catalog.
type Registry interface {
	SetFarmName(ctx context.Context, name string) error
	AddMachine(ctx context.Context, spec MachineSpec) (models.Machine, error)
	UpdateMachine(ctx context.Context, machine models.Machine) error
	DeleteMachine(ctx context.Context, id string) error
	AddCollaborator(ctx context.Context, spec CollaboratorSpec) (models.Collaborator, error)
	SetFuelPrices(ctx context.Context, prices []models.FuelPrice) error
	AddWarehouseItem(ctx context.Context, spec WarehouseItemSpec) (models.WarehouseItem, error)
	UpdateWarehouseItem(ctx context.Context, item models.WarehouseItem) error
	DeleteWarehouseItem(ctx context.Context, id string) error
	MachineByID(id string) (models.Machine, bool)
	CollaboratorByID(id string) (models.Collaborator, bool)
	Snapshot() models.Farm
}

// Fueling ingests and corrects fuel events. Only fuel events are revisable.
type Fueling interface {
	RecordFuelEvent(ctx context.Context, in FuelEventInput) (models.FuelEvent, error)
	ReviseFuelEvent(ctx context.Context, event models.FuelEvent) (models.FuelEvent, error)
}

// Maintenance ingests maintenance events, deducting stock and advancing
// interval counters.
type Maintenance interface {
	RecordMaintenanceEvent(ctx context.Context, in MaintenanceEventInput) (models.MaintenanceEvent, []StockWarning, error)
}

// Alerts scans the fleet for maintenance coming due.
type Alerts interface {
	Generate(now time.Time) []MaintenanceAlert
}

// Reports computes read-only cost aggregations.
type Reports interface {
	CostByMachine() []MachineCostSummary
	MaintenanceCostByType() []MaintenanceTypeCost
}

// Audit exposes the append-only operation trail.
type Audit interface {
	List(ctx context.Context, f LogFilter) ([]models.AuditEntry, error)
}

// Watcher runs the background scan loop. Stop via context cancellation.
type Watcher interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all engine sub-services over one shared aggregate.
type Service struct {
	Registry
	Fueling
	Maintenance
	Alerts
	Reports
	Audit
	Watcher

	state *farmState
}

// Options tunes engine behavior; zero values take defaults.
type Options struct {
	AlertThresholdHours float64 // 0 means DefaultAlertThresholdHours
}

// NewService loads the stored aggregate (if any) and wires the sub-services
// around it.
func NewService(ctx context.Context, repos *repository.Repository, log *logger.Logger, opts Options) (*Service, error) {
	state, err := newFarmState(ctx, repos, log)
	if err != nil {
		return nil, err
	}

	alerts := NewAlertService(state, opts.AlertThresholdHours)
	return &Service{
		Registry:    NewRegistryService(state),
		Fueling:     NewFuelingService(state),
		Maintenance: NewMaintenanceService(state, log),
		Alerts:      alerts,
		Reports:     NewReportsService(state),
		Audit:       NewAuditService(repos.Audit),
		Watcher:     NewWatcherService(alerts, log),
		state:       state,
	}, nil
}

// Flush retries the durable save of the current aggregate. Use it after an
// operation returned a PersistenceError: the in-memory mutation is kept, only
// the save is redone.
func (s *Service) Flush(ctx context.Context) error {
	return s.state.flush(ctx)
}
