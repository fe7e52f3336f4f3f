package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrotrack/internal/models"
)

func validFuelInput() FuelEventInput {
	return FuelEventInput{
		Date:           time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC),
		MachineID:      "m1",
		CollaboratorID: "c1",
		FuelType:       models.FuelDieselS10,
		Quantity:       120,
		TotalValue:     720,
		Odometer:       1050,
	}
}

func TestRecordFuelEvent_AdvancesLedger(t *testing.T) {
	svc, frepo, arepo := newTestEngine(t, seedFarm())

	event, err := svc.RecordFuelEvent(context.Background(), validFuelInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ID == "" {
		t.Fatalf("expected generated event id")
	}

	saved := lastSavedFarm(t, frepo)
	m := machineFrom(t, saved, "m1")
	if m.HourMeter != 1050 {
		t.Fatalf("expected counter 1050, got %v", m.HourMeter)
	}
	if len(m.HourMeterHistory) != 1 {
		t.Fatalf("expected exactly one ledger entry, got %d", len(m.HourMeterHistory))
	}
	entry := m.HourMeterHistory[0]
	if entry.Source != models.SourceFueling || entry.SourceID != event.ID || entry.Value != 1050 {
		t.Fatalf("ledger entry wrong: %#v", entry)
	}
	if len(saved.FuelEvents) != 1 {
		t.Fatalf("expected event stored, got %d", len(saved.FuelEvents))
	}
	if len(arepo.entries) != 1 || arepo.entries[0].Op != OpFuelRecord {
		t.Fatalf("expected FUEL_RECORD audit entry, got %#v", arepo.entries)
	}
}

func TestRecordFuelEvent_StaleOdometerKeepsLedgerUnchanged(t *testing.T) {
	svc, frepo, _ := newTestEngine(t, seedFarm())

	in := validFuelInput()
	in.Odometer = 900 // machine sits at 1000
	if _, err := svc.RecordFuelEvent(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := lastSavedFarm(t, frepo)
	m := machineFrom(t, saved, "m1")
	if m.HourMeter != 1000 || len(m.HourMeterHistory) != 0 {
		t.Fatalf("stale reading must not touch the ledger: %v / %d entries", m.HourMeter, len(m.HourMeterHistory))
	}
	// the event itself is still recorded
	if len(saved.FuelEvents) != 1 {
		t.Fatalf("expected event stored, got %d", len(saved.FuelEvents))
	}
}

func TestRecordFuelEvent_ValidationAbortsBeforeMutation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FuelEventInput)
	}{
		{"zero quantity", func(in *FuelEventInput) { in.Quantity = 0 }},
		{"negative cost", func(in *FuelEventInput) { in.TotalValue = -1 }},
		{"zero odometer", func(in *FuelEventInput) { in.Odometer = 0 }},
		{"unknown fuel type", func(in *FuelEventInput) { in.FuelType = "KEROSENE" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, frepo, _ := newTestEngine(t, seedFarm())
			in := validFuelInput()
			tc.mutate(&in)

			_, err := svc.RecordFuelEvent(context.Background(), in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(frepo.saves) != 0 {
				t.Fatalf("validation failure must not persist anything")
			}
		})
	}
}

func TestRecordFuelEvent_UnknownReferences(t *testing.T) {
	svc, frepo, _ := newTestEngine(t, seedFarm())

	in := validFuelInput()
	in.MachineID = "ghost"
	_, err := svc.RecordFuelEvent(context.Background(), in)
	var nferr *NotFoundError
	if !errors.As(err, &nferr) || nferr.Kind != "machine" {
		t.Fatalf("expected machine NotFoundError, got %v", err)
	}

	in = validFuelInput()
	in.CollaboratorID = "ghost"
	_, err = svc.RecordFuelEvent(context.Background(), in)
	if !errors.As(err, &nferr) || nferr.Kind != "collaborator" {
		t.Fatalf("expected collaborator NotFoundError, got %v", err)
	}
	if len(frepo.saves) != 0 {
		t.Fatalf("failed lookups must not persist anything")
	}
}

func TestReviseFuelEvent_ReplaysLedger(t *testing.T) {
	svc, frepo, _ := newTestEngine(t, seedFarm())
	ctx := context.Background()

	first, err := svc.RecordFuelEvent(ctx, validFuelInput())
	if err != nil {
		t.Fatalf("record first: %v", err)
	}
	second := validFuelInput()
	second.Date = second.Date.AddDate(0, 0, 5)
	second.Odometer = 1500
	latest, err := svc.RecordFuelEvent(ctx, second)
	if err != nil {
		t.Fatalf("record second: %v", err)
	}

	// correcting the latest (wrongly high) reading lowers the counter
	corrected := latest
	corrected.Odometer = 1100
	if _, err := svc.ReviseFuelEvent(ctx, corrected); err != nil {
		t.Fatalf("revise: %v", err)
	}

	saved := lastSavedFarm(t, frepo)
	m := machineFrom(t, saved, "m1")
	if m.HourMeter != 1100 {
		t.Fatalf("expected counter re-derived to 1100, got %v", m.HourMeter)
	}
	if len(m.HourMeterHistory) != 2 {
		t.Fatalf("revision must not append ledger entries, got %d", len(m.HourMeterHistory))
	}
	for _, e := range m.HourMeterHistory {
		if e.SourceID == latest.ID && e.Value != 1100 {
			t.Fatalf("ledger entry not revised in place: %#v", e)
		}
		if e.SourceID == first.ID && e.Value != 1050 {
			t.Fatalf("untouched entry changed: %#v", e)
		}
	}

	// the stored event reflects the correction
	var stored models.FuelEvent
	for _, ev := range saved.FuelEvents {
		if ev.ID == latest.ID {
			stored = ev
		}
	}
	if stored.Odometer != 1100 {
		t.Fatalf("stored event not replaced, odometer %v", stored.Odometer)
	}
}

func TestReviseFuelEvent_CounterFollowsMostRecentObservation(t *testing.T) {
	svc, frepo, _ := newTestEngine(t, seedFarm())
	ctx := context.Background()

	fuel, err := svc.RecordFuelEvent(ctx, validFuelInput())
	if err != nil {
		t.Fatalf("record fuel: %v", err)
	}
	maint := MaintenanceEventInput{
		Date:           fuel.Date.AddDate(0, 0, 2),
		MachineID:      "m1",
		CollaboratorID: "c1",
		Type:           models.MaintOilChange,
		HourMeter:      1080,
	}
	if _, _, err := svc.RecordMaintenanceEvent(ctx, maint); err != nil {
		t.Fatalf("record maintenance: %v", err)
	}

	// push the fuel event past the maintenance in time; its reading now rules
	moved := fuel
	moved.Date = fuel.Date.AddDate(0, 0, 10)
	moved.Odometer = 1070
	if _, err := svc.ReviseFuelEvent(ctx, moved); err != nil {
		t.Fatalf("revise: %v", err)
	}

	m := machineFrom(t, lastSavedFarm(t, frepo), "m1")
	if m.HourMeter != 1070 {
		t.Fatalf("expected counter 1070 from most recent observation, got %v", m.HourMeter)
	}
}

func TestReviseFuelEvent_UnknownEvent(t *testing.T) {
	svc, _, _ := newTestEngine(t, seedFarm())

	ev := models.FuelEvent{
		ID:        "ghost",
		Date:      time.Now().UTC(),
		MachineID: "m1",
		FuelType:  models.FuelDieselS10,
		Quantity:  1, TotalValue: 1, Odometer: 1,
	}
	_, err := svc.ReviseFuelEvent(context.Background(), ev)
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReviseFuelEvent_CannotSwitchMachine(t *testing.T) {
	svc, _, _ := newTestEngine(t, seedFarm())
	ctx := context.Background()

	ev, err := svc.RecordFuelEvent(ctx, validFuelInput())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	ev.MachineID = "other"
	_, err = svc.ReviseFuelEvent(ctx, ev)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
