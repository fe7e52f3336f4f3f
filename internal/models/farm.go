package models

// Collaborator is a person who operates machines and reports events.
// The engine only attributes records to collaborators; it never
// authenticates them.
type Collaborator struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Contact     string `json:"contact,omitempty"`
	Assignments string `json:"assignments,omitempty"`
}

// FuelPrice is the configured price per liter for a fuel type.
type FuelPrice struct {
	FuelType FuelType `json:"fuel_type"`
	Price    float64  `json:"price"`
}

// Farm is the single aggregate document the engine operates on. It owns every
// entity; ledgers and interval state are stored inside it and there is no
// separate persistence for derived data.
type Farm struct {
	Name              string             `json:"name"`
	Machines          []Machine          `json:"machines"`
	Collaborators     []Collaborator     `json:"collaborators"`
	FuelEvents        []FuelEvent        `json:"fuel_events"`
	MaintenanceEvents []MaintenanceEvent `json:"maintenance_events"`
	FuelPrices        []FuelPrice        `json:"fuel_prices"`
	WarehouseItems    []WarehouseItem    `json:"warehouse_items"`
}

// Clone returns a deep copy of the aggregate, safe to hand to readers while
// mutations continue on the original.
func (f Farm) Clone() Farm {
	out := f
	out.Machines = make([]Machine, len(f.Machines))
	for i, m := range f.Machines {
		out.Machines[i] = m.clone()
	}
	out.Collaborators = append([]Collaborator(nil), f.Collaborators...)
	out.FuelEvents = append([]FuelEvent(nil), f.FuelEvents...)
	out.MaintenanceEvents = make([]MaintenanceEvent, len(f.MaintenanceEvents))
	for i, ev := range f.MaintenanceEvents {
		out.MaintenanceEvents[i] = ev
		out.MaintenanceEvents[i].PartsUsed = append([]PartUsage(nil), ev.PartsUsed...)
	}
	out.FuelPrices = append([]FuelPrice(nil), f.FuelPrices...)
	out.WarehouseItems = make([]WarehouseItem, len(f.WarehouseItems))
	for i, it := range f.WarehouseItems {
		out.WarehouseItems[i] = it
		out.WarehouseItems[i].StockHistory = append([]StockHistoryEntry(nil), it.StockHistory...)
	}
	return out
}

func (m Machine) clone() Machine {
	out := m
	if m.Config != nil {
		cfg := *m.Config
		out.Config = &cfg
	}
	if m.LastMaintenance != nil {
		lm := *m.LastMaintenance
		out.LastMaintenance = &lm
	}
	out.HourMeterHistory = append([]HourMeterLogEntry(nil), m.HourMeterHistory...)
	return out
}
