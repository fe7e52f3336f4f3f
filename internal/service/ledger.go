package service

import (
	"time"

	"agrotrack/internal/models"
)

// recordObservation applies a candidate hour-meter observation to a machine.
// The observation is accepted only when it exceeds the current canonical
// counter; acceptance appends a ledger entry and advances the counter.
// Returns whether the observation was applied.
func recordObservation(m *models.Machine, e models.HourMeterLogEntry) bool {
	if e.Value <= m.HourMeter {
		return false
	}
	m.HourMeter = e.Value
	m.HourMeterHistory = append(m.HourMeterHistory, e)
	return true
}

// reviseObservation updates, in place, the ledger entry produced by the given
// source event. It does not touch the canonical counter; callers must
// recompute it with canonicalHourMeter afterwards. Returns whether a matching
// entry existed.
func reviseObservation(m *models.Machine, source models.HourMeterSource, sourceID string, date time.Time, value float64) bool {
	for i := range m.HourMeterHistory {
		entry := &m.HourMeterHistory[i]
		if entry.Source == source && entry.SourceID == sourceID {
			entry.Date = date
			entry.Value = value
			return true
		}
	}
	return false
}

// canonicalHourMeter derives the machine's counter from every observation
// currently attributable to it: all fuel and maintenance events combined,
// taking the reading of the most recent by timestamp (not the numeric
// maximum), so that editing a wrongly high reading can lower the counter.
// On identical timestamps the entry scanned last wins: maintenance events
// take precedence over fuel events, later entries over earlier ones.
// Returns 0 when the machine has no observations.
func canonicalHourMeter(farm *models.Farm, machineID string) float64 {
	var (
		latest   float64
		latestAt time.Time
		found    bool
	)
	take := func(at time.Time, value float64) {
		if !found || !at.Before(latestAt) {
			latest = value
			latestAt = at
			found = true
		}
	}
	for _, ev := range farm.FuelEvents {
		if ev.MachineID == machineID {
			take(ev.Date, ev.Odometer)
		}
	}
	for _, ev := range farm.MaintenanceEvents {
		if ev.MachineID == machineID {
			take(ev.Date, ev.HourMeter)
		}
	}
	return latest
}
