package itinerary

import "errors"

// ErrInvalidDateRange is returned by Generate when the trip's end date falls
// before its start date. No partial sequence is produced.
var ErrInvalidDateRange = errors.New("end date before start date")

// ErrInvalidDayPlan marks a day that violates the model invariants
// (non-positive day number, negative budget or activity cost).
var ErrInvalidDayPlan = errors.New("invalid day plan")

// ErrNoSuchDay is returned by the mutation functions when the day or activity
// index is out of range.
var ErrNoSuchDay = errors.New("no such day")

// SaveError wraps a store failure during the replace-all save together with
// the phase it happened in, so the caller can decide whether to retry the
// whole sequence. The adapter never rolls back partial progress.
type SaveError struct {
	Phase string // "delete", "create" or "update"
	Err   error
}

func (e *SaveError) Error() string {
	return "itinerary save: " + e.Phase + " phase: " + e.Err.Error()
}

func (e *SaveError) Unwrap() error { return e.Err }
