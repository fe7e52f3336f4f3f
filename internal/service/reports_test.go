package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrotrack/internal/models"
)

func TestCostByMachine(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	farm := models.Farm{
		Machines: []models.Machine{
			{ID: "m1", Name: "Tractor A"},
			{ID: "m2", Name: "Truck B"},
			{ID: "m3", Name: "Idle C"},
		},
		FuelEvents: []models.FuelEvent{
			{ID: "f1", MachineID: "m1", Date: day, TotalValue: 700},
			{ID: "f2", MachineID: "m1", Date: day, TotalValue: 300},
			{ID: "f3", MachineID: "m2", Date: day, TotalValue: 500},
		},
		MaintenanceEvents: []models.MaintenanceEvent{
			{ID: "mt1", MachineID: "m1", Date: day, Type: models.MaintPreventive, TotalCost: 250},
		},
	}
	svc, _, _ := newTestEngine(t, farm)

	summaries := svc.CostByMachine()
	require.Len(t, summaries, 2, "machines without spend are skipped")

	assert.Equal(t, "m1", summaries[0].MachineID)
	assert.Equal(t, 1000.0, summaries[0].FuelCost)
	assert.Equal(t, 250.0, summaries[0].MaintenanceCost)
	assert.Equal(t, 1250.0, summaries[0].Total)

	assert.Equal(t, "m2", summaries[1].MachineID)
	assert.Equal(t, 500.0, summaries[1].Total)
}

func TestMaintenanceCostByType(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	farm := models.Farm{
		MaintenanceEvents: []models.MaintenanceEvent{
			{ID: "a", Date: day, Type: models.MaintOilChange, TotalCost: 100},
			{ID: "b", Date: day, Type: models.MaintOilChange, TotalCost: 150},
			{ID: "c", Date: day, Type: models.MaintCorrective, TotalCost: 900},
		},
	}
	svc, _, _ := newTestEngine(t, farm)

	totals := svc.MaintenanceCostByType()
	require.Len(t, totals, 2)
	assert.Equal(t, models.MaintOilChange, totals[0].Type)
	assert.Equal(t, 250.0, totals[0].Total)
	assert.Equal(t, models.MaintCorrective, totals[1].Type)
	assert.Equal(t, 900.0, totals[1].Total)
}
