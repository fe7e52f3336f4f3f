package models

import "time"

// AuditEntry is a single row in the engine's operation trail. Unlike the
// aggregate document it is stored as an append-only table so that a corrupt
// or replaced document never erases the record of what was done.
type AuditEntry struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Op         string    `json:"op"`     // e.g. FUEL_RECORD, MACHINE_ADD
	Detail     string    `json:"detail"` // human-readable
	Metadata   any       `json:"metadata,omitempty"`
}
