package service

import (
	"context"
	"time"

	"agrotrack/internal/logger"
)

// WatcherService periodically scans the fleet and logs upcoming or overdue
// maintenance. The engine stays pull-model: the watcher only reports, it
// never mutates or notifies anyone.
type WatcherService struct {
	alerts Alerts
	log    *logger.Logger
}

func NewWatcherService(alerts Alerts, log *logger.Logger) *WatcherService {
	return &WatcherService{alerts: alerts, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (s *WatcherService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.scan(now.UTC())
		}
	}
}

func (s *WatcherService) scan(now time.Time) {
	alerts := s.alerts.Generate(now)
	if len(alerts) == 0 {
		s.log.Debugw("maintenance scan clean")
		return
	}
	for _, a := range alerts {
		if a.HoursRemaining < 0 {
			s.log.Warnw("maintenance overdue",
				"machine", a.MachineName,
				"category", a.CategoryLabel,
				"overdue_hours", -a.HoursRemaining,
			)
			continue
		}
		fields := []any{
			"machine", a.MachineName,
			"category", a.CategoryLabel,
			"remaining_hours", a.HoursRemaining,
			"due_at_hours", a.DueAtHours,
		}
		if a.EstimatedDueDate != nil {
			fields = append(fields, "estimated_due", a.EstimatedDueDate.Format("2006-01-02"))
		}
		s.log.Infow("maintenance coming due", fields...)
	}
}
