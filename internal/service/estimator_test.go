package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agrotrack/internal/models"
)

func ledgerEntry(at time.Time, value float64) models.HourMeterLogEntry {
	return models.HourMeterLogEntry{Date: at, Value: value}
}

func TestDailyUsageRate_TwoEntries(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	history := []models.HourMeterLogEntry{
		ledgerEntry(t0, 1000),
		ledgerEntry(t0.AddDate(0, 0, 10), 1200),
	}

	assert.InDelta(t, 20.0, dailyUsageRate(history), 1e-9)
}

func TestDailyUsageRate_UsesEarliestAndLatest(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	// out of order on purpose; intermediate values must not matter
	history := []models.HourMeterLogEntry{
		ledgerEntry(t0.AddDate(0, 0, 4), 1500),
		ledgerEntry(t0, 1000),
		ledgerEntry(t0.AddDate(0, 0, 10), 1100),
	}

	assert.InDelta(t, 10.0, dailyUsageRate(history), 1e-9)
}

func TestDailyUsageRate_Defaults(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		history []models.HourMeterLogEntry
	}{
		{"empty", nil},
		{"single entry", []models.HourMeterLogEntry{ledgerEntry(t0, 1000)}},
		{"span of one day or less", []models.HourMeterLogEntry{
			ledgerEntry(t0, 1000),
			ledgerEntry(t0.Add(20*time.Hour), 1050),
		}},
		{"negative delta", []models.HourMeterLogEntry{
			ledgerEntry(t0, 1000),
			ledgerEntry(t0.AddDate(0, 0, 5), 900),
		}},
		{"flat counter", []models.HourMeterLogEntry{
			ledgerEntry(t0, 1000),
			ledgerEntry(t0.AddDate(0, 0, 5), 1000),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, defaultDailyUsageHours, dailyUsageRate(tt.history))
		})
	}
}
