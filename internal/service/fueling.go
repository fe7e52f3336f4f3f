package service

import (
	"context"
	"fmt"

	"agrotrack/internal/models"
)

// FuelingService ingests and corrects fuel events. Recording pushes the
// odometer reading into the machine's hour-meter ledger; revising replays the
// ledger so the canonical counter stays consistent with the corrected event.
type FuelingService struct {
	state *farmState
}

func NewFuelingService(state *farmState) *FuelingService {
	return &FuelingService{state: state}
}

func validateFuelFields(fuelType models.FuelType, quantity, totalValue, odometer float64) error {
	if !knownFuelType(fuelType) {
		return invalidf("fuel_type", "unknown fuel type %q", fuelType)
	}
	if quantity <= 0 {
		return invalidf("quantity", "must be greater than zero")
	}
	if totalValue <= 0 {
		return invalidf("total_value", "must be greater than zero")
	}
	if odometer <= 0 {
		return invalidf("odometer", "must be greater than zero")
	}
	return nil
}

// RecordFuelEvent validates and stores a new fueling, applying the odometer
// reading to the machine's ledger when it exceeds the current counter.
func (s *FuelingService) RecordFuelEvent(ctx context.Context, in FuelEventInput) (models.FuelEvent, error) {
	if err := validateFuelFields(in.FuelType, in.Quantity, in.TotalValue, in.Odometer); err != nil {
		return models.FuelEvent{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = s.state.now()
	}
	event := models.FuelEvent{
		ID:             s.state.newID(),
		Date:           date.UTC(),
		MachineID:      in.MachineID,
		CollaboratorID: in.CollaboratorID,
		FuelType:       in.FuelType,
		Quantity:       in.Quantity,
		TotalValue:     in.TotalValue,
		Odometer:       in.Odometer,
		Observations:   in.Observations,
	}

	detail := fmt.Sprintf("fuel event recorded for machine %s (%.1f L)", in.MachineID, in.Quantity)
	err := s.state.mutate(ctx, OpFuelRecord, detail, func(farm *models.Farm) error {
		machine := findMachine(farm, in.MachineID)
		if machine == nil {
			return &NotFoundError{Kind: "machine", ID: in.MachineID}
		}
		if findCollaborator(farm, in.CollaboratorID) == nil {
			return &NotFoundError{Kind: "collaborator", ID: in.CollaboratorID}
		}

		recordObservation(machine, models.HourMeterLogEntry{
			Date:           event.Date,
			Value:          event.Odometer,
			CollaboratorID: event.CollaboratorID,
			Source:         models.SourceFueling,
			SourceID:       event.ID,
		})
		farm.FuelEvents = append(farm.FuelEvents, event)
		return nil
	})
	if err != nil {
		return models.FuelEvent{}, err
	}
	return event, nil
}

// ReviseFuelEvent replaces an existing fuel event and replays the machine's
// ledger: the matching history entry is updated in place and the canonical
// counter is re-derived from the most recent observation across all of the
// machine's fuel and maintenance events. Maintenance events have no revision
// path; only fuelings are correctable.
func (s *FuelingService) ReviseFuelEvent(ctx context.Context, event models.FuelEvent) (models.FuelEvent, error) {
	if err := validateFuelFields(event.FuelType, event.Quantity, event.TotalValue, event.Odometer); err != nil {
		return models.FuelEvent{}, err
	}
	if event.Date.IsZero() {
		return models.FuelEvent{}, invalidf("date", "must be set")
	}
	event.Date = event.Date.UTC()

	detail := fmt.Sprintf("fuel event %s revised", event.ID)
	err := s.state.mutate(ctx, OpFuelRevise, detail, func(farm *models.Farm) error {
		stored := findFuelEvent(farm, event.ID)
		if stored == nil {
			return &NotFoundError{Kind: "fuel event", ID: event.ID}
		}
		if stored.MachineID != event.MachineID {
			return invalidf("machine_id", "cannot move an event to another machine")
		}
		*stored = event

		// The machine may have been deleted since; the event record still
		// gets corrected, there is just no ledger left to replay.
		machine := findMachine(farm, event.MachineID)
		if machine == nil {
			return nil
		}
		reviseObservation(machine, models.SourceFueling, event.ID, event.Date, event.Odometer)
		machine.HourMeter = canonicalHourMeter(farm, event.MachineID)
		return nil
	})
	if err != nil {
		return models.FuelEvent{}, err
	}
	return event, nil
}

func findFuelEvent(farm *models.Farm, id string) *models.FuelEvent {
	for i := range farm.FuelEvents {
		if farm.FuelEvents[i].ID == id {
			return &farm.FuelEvents[i]
		}
	}
	return nil
}
