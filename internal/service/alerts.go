package service

import (
	"math"
	"sort"
	"time"

	"agrotrack/internal/models"
)

// DefaultAlertThresholdHours is how close to due (in hour-meter units) a
// category must be before it produces an alert.
const DefaultAlertThresholdHours = 50.0

// MaintenanceAlert is one upcoming or overdue service item. HoursRemaining
// may be negative, meaning overdue; there is no separate overdue state, the
// sign is the distinction. EstimatedDueDate is set only for upcoming items
// with a positive usage-rate estimate.
type MaintenanceAlert struct {
	MachineID        string
	MachineName      string
	Category         Category
	CategoryLabel    string
	HoursRemaining   float64
	DueAtHours       float64
	EstimatedDueDate *time.Time
}

// AlertService scans the fleet for maintenance coming due.
type AlertService struct {
	state     *farmState
	threshold float64
}

func NewAlertService(state *farmState, threshold float64) *AlertService {
	if threshold <= 0 {
		threshold = DefaultAlertThresholdHours
	}
	return &AlertService{state: state, threshold: threshold}
}

// Generate returns the fleet's alert list, most overdue first. It is a pure
// read over a snapshot of the aggregate and may run freely between mutations.
func (s *AlertService) Generate(now time.Time) []MaintenanceAlert {
	farm := s.state.snapshot()
	return generateAlerts(farm, s.threshold, now)
}

func generateAlerts(farm models.Farm, threshold float64, now time.Time) []MaintenanceAlert {
	var alerts []MaintenanceAlert

	for _, m := range farm.Machines {
		if m.Status == models.StatusInactive {
			continue
		}
		statuses := intervalStatuses(m)
		if len(statuses) == 0 {
			continue
		}

		rate := dailyUsageRate(m.HourMeterHistory)

		for _, st := range statuses {
			if st.Remaining > threshold {
				continue
			}
			alert := MaintenanceAlert{
				MachineID:      m.ID,
				MachineName:    m.Name,
				Category:       st.Category,
				CategoryLabel:  st.Category.Label(),
				HoursRemaining: st.Remaining,
				DueAtHours:     st.DueAt,
			}
			if st.Remaining >= 0 && rate > 0 {
				days := int(math.Ceil(st.Remaining / rate))
				due := now.AddDate(0, 0, days)
				alert.EstimatedDueDate = &due
			}
			alerts = append(alerts, alert)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].HoursRemaining < alerts[j].HoursRemaining
	})
	return alerts
}
