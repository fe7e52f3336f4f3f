package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrotrack/internal/models"
)

func TestCategoriesFor(t *testing.T) {
	tests := []struct {
		event models.MaintenanceType
		want  []Category
	}{
		{models.MaintOilChange, []Category{CategoryEngineOil}},
		{models.MaintFilterChange, []Category{CategoryFuelFilter, CategoryAirFilter}},
		{models.MaintOilAndFilter, []Category{CategoryEngineOil, CategoryFuelFilter, CategoryAirFilter}},
		{models.MaintPreventive, []Category{CategoryEngineOil, CategoryTransmissionOil, CategoryFuelFilter, CategoryAirFilter}},
		{models.MaintCorrective, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, categoriesFor(tt.event), "event %s", tt.event)
	}
}

func TestAdvanceCounters_OilAndFilter(t *testing.T) {
	lm := models.LastMaintenance{
		EngineOilHour:       400,
		TransmissionOilHour: 100,
		FuelFilterHour:      450,
		AirFilterHour:       450,
	}

	advanceCounters(&lm, categoriesFor(models.MaintOilAndFilter), 500)

	assert.Equal(t, models.LastMaintenance{
		EngineOilHour:       500,
		TransmissionOilHour: 100, // untouched
		FuelFilterHour:      500,
		AirFilterHour:       500,
	}, lm)
}

func TestAdvanceCounters_NeverDecreases(t *testing.T) {
	lm := models.LastMaintenance{EngineOilHour: 800}

	advanceCounters(&lm, []Category{CategoryEngineOil}, 700)

	assert.Equal(t, 800.0, lm.EngineOilHour)
}

func TestIntervalStatuses_RemainingMath(t *testing.T) {
	m := models.Machine{
		HourMeter:       1245,
		Config:          &models.MaintenanceConfig{EngineOilHours: 250},
		LastMaintenance: &models.LastMaintenance{EngineOilHour: 1005},
	}

	statuses := intervalStatuses(m)
	require.Len(t, statuses, 1)
	assert.Equal(t, CategoryEngineOil, statuses[0].Category)
	assert.Equal(t, 1255.0, statuses[0].DueAt)
	assert.InDelta(t, 10.0, statuses[0].Remaining, 1e-9)
}

func TestIntervalStatuses_Unmonitored(t *testing.T) {
	t.Run("no config", func(t *testing.T) {
		m := models.Machine{LastMaintenance: &models.LastMaintenance{}}
		assert.Empty(t, intervalStatuses(m))
	})
	t.Run("no last maintenance", func(t *testing.T) {
		m := models.Machine{Config: &models.MaintenanceConfig{EngineOilHours: 250}}
		assert.Empty(t, intervalStatuses(m))
	})
	t.Run("non-positive intervals skipped", func(t *testing.T) {
		m := models.Machine{
			HourMeter: 100,
			Config: &models.MaintenanceConfig{
				EngineOilHours:  250,
				FuelFilterHours: -1,
				AirFilterHours:  0,
			},
			LastMaintenance: &models.LastMaintenance{},
		}
		statuses := intervalStatuses(m)
		require.Len(t, statuses, 1)
		assert.Equal(t, CategoryEngineOil, statuses[0].Category)
	})
}
