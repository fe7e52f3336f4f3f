package service

import (
	"sort"

	"agrotrack/internal/models"
)

// defaultDailyUsageHours is the assumed usage for machines without enough
// ledger history to estimate from: a plausible baseline for active equipment.
const defaultDailyUsageHours = 4.0

const hoursPerDay = 24.0

// dailyUsageRate estimates a machine's average hour-meter advance per
// calendar day from its ledger. The earliest and latest entries bound the
// estimate (no regression fit). The default rate is returned when there are
// fewer than two entries, the covered span is a day or less, or the counter
// delta is not positive.
func dailyUsageRate(history []models.HourMeterLogEntry) float64 {
	if len(history) < 2 {
		return defaultDailyUsageHours
	}

	sorted := append([]models.HourMeterLogEntry(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := sorted[0]
	last := sorted[len(sorted)-1]

	deltaHours := last.Value - first.Value
	deltaDays := last.Date.Sub(first.Date).Hours() / hoursPerDay

	if deltaDays <= 1 || deltaHours <= 0 {
		return defaultDailyUsageHours
	}
	return deltaHours / deltaDays
}
