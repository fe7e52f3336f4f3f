package service

import (
	"context"
	"sync"
	"time"

	"agrotrack/internal/logger"
	"agrotrack/internal/models"
	"agrotrack/internal/repository"

	"github.com/google/uuid"
)

// Operation tags recorded in the audit trail.
const (
	OpFarmRename        = "FARM_RENAME"
	OpMachineAdd        = "MACHINE_ADD"
	OpMachineUpdate     = "MACHINE_UPDATE"
	OpMachineDelete     = "MACHINE_DELETE"
	OpCollaboratorAdd   = "COLLABORATOR_ADD"
	OpFuelRecord        = "FUEL_RECORD"
	OpFuelRevise        = "FUEL_REVISE"
	OpMaintenanceRecord = "MAINTENANCE_RECORD"
	OpFuelPricesSet     = "FUEL_PRICES_SET"
	OpWarehouseAdd      = "WAREHOUSE_ADD"
	OpWarehouseUpdate   = "WAREHOUSE_UPDATE"
	OpWarehouseDelete   = "WAREHOUSE_DELETE"
)

// farmState owns the single in-memory aggregate. Every mutation runs as one
// read-modify-write under the mutex, is saved durably on success, and leaves
// a row in the audit trail. The engine is single-writer: the mutex serializes
// callers so no partial state is ever observable.
type farmState struct {
	mu    sync.Mutex
	farm  models.Farm
	repos *repository.Repository
	log   *logger.Logger

	// injected for tests
	now   func() time.Time
	newID func() string
}

func newFarmState(ctx context.Context, repos *repository.Repository, log *logger.Logger) (*farmState, error) {
	farm, found, err := repos.Farm.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Infow("no stored farm document, starting empty")
	}
	return &farmState{
		farm:  farm,
		repos: repos,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}, nil
}

// mutate applies fn to the aggregate under the lock, then persists. fn must
// perform all validation before touching the aggregate so a returned error
// leaves the state untouched (all-or-nothing).
func (s *farmState) mutate(ctx context.Context, op, detail string, fn func(*models.Farm) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.farm); err != nil {
		return err
	}
	return s.persistLocked(ctx, op, detail)
}

// persistLocked saves the aggregate and appends the audit row. A save failure
// is surfaced as *PersistenceError without rolling back the in-memory
// mutation; the caller may retry via Flush. Audit append failures are logged
// and swallowed: the trail is advisory, the document is authoritative.
func (s *farmState) persistLocked(ctx context.Context, op, detail string) error {
	if err := s.repos.Farm.Save(ctx, s.farm); err != nil {
		s.log.Errorw("farm save failed, memory and disk diverged", "op", op, "err", err)
		return &PersistenceError{Err: err}
	}
	if op == "" {
		return nil
	}
	if err := s.repos.Audit.Append(ctx, models.AuditEntry{
		OccurredAt: s.now(),
		Op:         op,
		Detail:     detail,
	}); err != nil {
		s.log.Warnw("audit append failed", "op", op, "err", err)
	}
	return nil
}

// snapshot returns a deep copy for readers; mutations continue unaffected.
func (s *farmState) snapshot() models.Farm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.farm.Clone()
}

// flush retries the durable save of the current aggregate, for recovery after
// a PersistenceError.
func (s *farmState) flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx, "", "")
}
