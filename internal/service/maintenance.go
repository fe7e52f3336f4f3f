package service

import (
	"context"
	"fmt"

	"agrotrack/internal/logger"
	"agrotrack/internal/models"
)

// MaintenanceService ingests maintenance events: it deducts consumed parts
// from stock, advances the machine's interval counters per event type, and
// pushes the hour-meter reading into the ledger. Maintenance events are not
// revisable once recorded.
type MaintenanceService struct {
	state *farmState
	log   *logger.Logger
}

func NewMaintenanceService(state *farmState, log *logger.Logger) *MaintenanceService {
	return &MaintenanceService{state: state, log: log}
}

// RecordMaintenanceEvent validates and stores a new maintenance record.
// Insufficient stock never blocks the event: the deduction is applied anyway
// and returned as warnings (stock may go negative).
func (s *MaintenanceService) RecordMaintenanceEvent(ctx context.Context, in MaintenanceEventInput) (models.MaintenanceEvent, []StockWarning, error) {
	if !knownMaintenanceType(in.Type) {
		return models.MaintenanceEvent{}, nil, invalidf("type", "unknown maintenance type %q", in.Type)
	}
	if in.HourMeter <= 0 {
		return models.MaintenanceEvent{}, nil, invalidf("hour_meter", "must be greater than zero")
	}
	if in.TotalCost < 0 {
		return models.MaintenanceEvent{}, nil, invalidf("total_cost", "must not be negative")
	}
	for _, part := range in.PartsUsed {
		if part.Quantity <= 0 {
			return models.MaintenanceEvent{}, nil, invalidf("parts_used", "quantity for item %s must be greater than zero", part.ItemID)
		}
	}

	date := in.Date
	if date.IsZero() {
		date = s.state.now()
	}
	event := models.MaintenanceEvent{
		ID:             s.state.newID(),
		Date:           date.UTC(),
		MachineID:      in.MachineID,
		CollaboratorID: in.CollaboratorID,
		Type:           in.Type,
		HourMeter:      in.HourMeter,
		TotalCost:      in.TotalCost,
		Notes:          in.Notes,
		PartsUsed:      append([]models.PartUsage(nil), in.PartsUsed...),
	}

	var warnings []StockWarning
	detail := fmt.Sprintf("maintenance (%s) recorded for machine %s at %.1f h", in.Type, in.MachineID, in.HourMeter)
	err := s.state.mutate(ctx, OpMaintenanceRecord, detail, func(farm *models.Farm) error {
		machine := findMachine(farm, in.MachineID)
		if machine == nil {
			return &NotFoundError{Kind: "machine", ID: in.MachineID}
		}
		if findCollaborator(farm, in.CollaboratorID) == nil {
			return &NotFoundError{Kind: "collaborator", ID: in.CollaboratorID}
		}
		// All referenced items must exist before any stock moves.
		items := make([]*models.WarehouseItem, len(event.PartsUsed))
		for i, part := range event.PartsUsed {
			item := findItem(farm, part.ItemID)
			if item == nil {
				return &NotFoundError{Kind: "warehouse item", ID: part.ItemID}
			}
			items[i] = item
		}

		for i, part := range event.PartsUsed {
			item := items[i]
			if part.Quantity > item.StockQuantity {
				w := StockWarning{
					ItemID:    item.ID,
					ItemName:  item.Name,
					Requested: part.Quantity,
					Available: item.StockQuantity,
				}
				warnings = append(warnings, w)
				s.log.Warnw("stock going negative",
					"item", item.Name,
					"requested", part.Quantity,
					"available", item.StockQuantity,
					"event", event.ID,
				)
			}
			applyUsage(item, part.Quantity, stockReasonMaintenance, event.ID, event.Date)
		}

		if machine.LastMaintenance == nil {
			machine.LastMaintenance = &models.LastMaintenance{}
		}
		advanceCounters(machine.LastMaintenance, categoriesFor(event.Type), event.HourMeter)

		recordObservation(machine, models.HourMeterLogEntry{
			Date:           event.Date,
			Value:          event.HourMeter,
			CollaboratorID: event.CollaboratorID,
			Source:         models.SourceMaintenance,
			SourceID:       event.ID,
		})
		farm.MaintenanceEvents = append(farm.MaintenanceEvents, event)
		return nil
	})
	if err != nil {
		return models.MaintenanceEvent{}, nil, err
	}
	return event, warnings, nil
}
