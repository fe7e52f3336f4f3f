package service

import "agrotrack/internal/models"

// Category is one of the four independently tracked serviceable subsystems.
type Category string

const (
	CategoryEngineOil       Category = "ENGINE_OIL"
	CategoryTransmissionOil Category = "TRANSMISSION_OIL"
	CategoryFuelFilter      Category = "FUEL_FILTER"
	CategoryAirFilter       Category = "AIR_FILTER"
)

// allCategories is the fixed tracking order.
var allCategories = []Category{
	CategoryEngineOil,
	CategoryTransmissionOil,
	CategoryFuelFilter,
	CategoryAirFilter,
}

// Label returns the human-readable name used in alerts.
func (c Category) Label() string {
	switch c {
	case CategoryEngineOil:
		return "Engine oil change"
	case CategoryTransmissionOil:
		return "Transmission oil change"
	case CategoryFuelFilter:
		return "Fuel filter change"
	case CategoryAirFilter:
		return "Air filter change"
	}
	return string(c)
}

// categoriesFor maps a maintenance event type to the interval counters it
// advances. Corrective work resets nothing.
func categoriesFor(t models.MaintenanceType) []Category {
	switch t {
	case models.MaintOilChange:
		return []Category{CategoryEngineOil}
	case models.MaintFilterChange:
		return []Category{CategoryFuelFilter, CategoryAirFilter}
	case models.MaintOilAndFilter:
		return []Category{CategoryEngineOil, CategoryFuelFilter, CategoryAirFilter}
	case models.MaintPreventive:
		return allCategories
	default: // CORRECTIVE and unknown
		return nil
	}
}

func counterFor(lm *models.LastMaintenance, c Category) *float64 {
	switch c {
	case CategoryEngineOil:
		return &lm.EngineOilHour
	case CategoryTransmissionOil:
		return &lm.TransmissionOilHour
	case CategoryFuelFilter:
		return &lm.FuelFilterHour
	case CategoryAirFilter:
		return &lm.AirFilterHour
	}
	return nil
}

func intervalFor(cfg models.MaintenanceConfig, c Category) float64 {
	switch c {
	case CategoryEngineOil:
		return cfg.EngineOilHours
	case CategoryTransmissionOil:
		return cfg.TransmissionOilHours
	case CategoryFuelFilter:
		return cfg.FuelFilterHours
	case CategoryAirFilter:
		return cfg.AirFilterHours
	}
	return 0
}

// advanceCounters sets each listed counter to max(current, value); a
// maintenance event never moves a counter backwards.
func advanceCounters(lm *models.LastMaintenance, cats []Category, value float64) {
	for _, c := range cats {
		counter := counterFor(lm, c)
		if counter != nil && value > *counter {
			*counter = value
		}
	}
}

// IntervalStatus is the due computation for one monitored category.
type IntervalStatus struct {
	Category     Category
	Interval     float64 // configured hours between services
	LastServiced float64 // counter at last service
	DueAt        float64 // LastServiced + Interval
	Remaining    float64 // DueAt - current counter; negative means overdue
}

// intervalStatuses computes due state for every monitored category of a
// machine. Machines without a config or last-maintenance record, and
// categories with a non-positive interval, are unmonitored and yield nothing.
func intervalStatuses(m models.Machine) []IntervalStatus {
	if m.Config == nil || m.LastMaintenance == nil {
		return nil
	}
	out := make([]IntervalStatus, 0, len(allCategories))
	for _, c := range allCategories {
		interval := intervalFor(*m.Config, c)
		if interval <= 0 {
			continue
		}
		last := *counterFor(m.LastMaintenance, c)
		dueAt := last + interval
		out = append(out, IntervalStatus{
			Category:     c,
			Interval:     interval,
			LastServiced: last,
			DueAt:        dueAt,
			Remaining:    dueAt - m.HourMeter,
		})
	}
	return out
}
