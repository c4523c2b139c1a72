package ports

import (
	"context"

	"foodtruck/internal/core/domain/model/shift"
)

// ShiftRepository defines the persistence contract for shift aggregates.
// The store enforces the at-most-one-active-shift singleton.
type ShiftRepository interface {
	// Add persists a newly started shift.
	Add(ctx context.Context, aggregate *shift.Shift) error

	// Update persists changes to an existing shift (running totals, close).
	Update(ctx context.Context, aggregate *shift.Shift) error

	// GetActive retrieves the currently active shift.
	// Returns ObjectNotFoundError when none is active.
	GetActive(ctx context.Context) (*shift.Shift, error)

	// GetActiveForUpdate retrieves the active shift and locks its row for the
	// remainder of the surrounding transaction. Payment recording and shift
	// close both use this, so their read-modify-write cycles serialize: two
	// simultaneous payments never lose an increment, and a payment racing a
	// close either lands inside the closing totals or sees no active shift.
	GetActiveForUpdate(ctx context.Context) (*shift.Shift, error)
}
