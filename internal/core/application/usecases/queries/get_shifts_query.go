package queries

import (
	"errors"

	"foodtruck/internal/pkg/errs"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrGetShiftsQueryIsNotConstructed = errors.New(
		"GetShiftsQuery must be created via NewGetShiftsQuery constructor",
	)
)

// GetShiftsQuery retrieves shift history, newest first, capped at a limit.
type GetShiftsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetShiftsQuery creates a query for shift history. Limit must be at
// least 1.
func NewGetShiftsQuery(limit int) (GetShiftsQuery, error) {
	if limit < 1 {
		return GetShiftsQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetShiftsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShiftsQuery) Validate() error {
	return q.guard.Validate(ErrGetShiftsQueryIsNotConstructed)
}

// Limit returns the maximum number of shifts to return.
func (q GetShiftsQuery) Limit() int {
	return q.limit
}
