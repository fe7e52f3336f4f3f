package service

import "agrotrack/internal/models"

// MachineCostSummary totals spending on one machine.
type MachineCostSummary struct {
	MachineID       string
	MachineName     string
	FuelCost        float64
	MaintenanceCost float64
	Total           float64
}

// MaintenanceTypeCost totals maintenance spending for one event type.
type MaintenanceTypeCost struct {
	Type  models.MaintenanceType
	Total float64
}

// ReportsService computes read-only cost aggregations over a snapshot.
type ReportsService struct {
	state *farmState
}

func NewReportsService(state *farmState) *ReportsService {
	return &ReportsService{state: state}
}

// CostByMachine sums fuel and maintenance spending per machine, in fleet
// order, skipping machines with no recorded spend.
func (s *ReportsService) CostByMachine() []MachineCostSummary {
	farm := s.state.snapshot()

	fuelByMachine := make(map[string]float64)
	for _, ev := range farm.FuelEvents {
		fuelByMachine[ev.MachineID] += ev.TotalValue
	}
	maintByMachine := make(map[string]float64)
	for _, ev := range farm.MaintenanceEvents {
		maintByMachine[ev.MachineID] += ev.TotalCost
	}

	var out []MachineCostSummary
	for _, m := range farm.Machines {
		summary := MachineCostSummary{
			MachineID:       m.ID,
			MachineName:     m.Name,
			FuelCost:        fuelByMachine[m.ID],
			MaintenanceCost: maintByMachine[m.ID],
		}
		summary.Total = summary.FuelCost + summary.MaintenanceCost
		if summary.Total > 0 {
			out = append(out, summary)
		}
	}
	return out
}

// MaintenanceCostByType sums maintenance spending per event type, in the
// fixed type order, skipping types with no recorded spend.
func (s *ReportsService) MaintenanceCostByType() []MaintenanceTypeCost {
	farm := s.state.snapshot()

	totals := make(map[models.MaintenanceType]float64)
	for _, ev := range farm.MaintenanceEvents {
		totals[ev.Type] += ev.TotalCost
	}

	order := []models.MaintenanceType{
		models.MaintOilChange,
		models.MaintFilterChange,
		models.MaintOilAndFilter,
		models.MaintPreventive,
		models.MaintCorrective,
	}
	var out []MaintenanceTypeCost
	for _, t := range order {
		if totals[t] > 0 {
			out = append(out, MaintenanceTypeCost{Type: t, Total: totals[t]})
		}
	}
	return out
}
