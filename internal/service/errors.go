package service

import "fmt"

// ValidationError reports a required field that is missing or out of range.
// The operation is aborted before any state mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced entity id that does not exist.
type NotFoundError struct {
	Kind string // "machine", "collaborator", "warehouse item", "fuel event"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// PersistenceError reports that the durable save failed after the in-memory
// mutation already succeeded. There is no rollback: the caller can retry the
// save via Service.Flush, or accept that memory and disk have diverged.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist farm document: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// StockWarning reports a part usage that exceeded on-hand quantity. The
// deduction is still applied (stock goes negative); the warning lets the
// caller surface it without failing the maintenance event.
type StockWarning struct {
	ItemID    string
	ItemName  string
	Requested float64
	Available float64
}

func (w StockWarning) String() string {
	return fmt.Sprintf("insufficient stock for %q: requested %.2f, available %.2f",
		w.ItemName, w.Requested, w.Available)
}
