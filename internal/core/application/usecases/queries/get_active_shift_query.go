package queries

import (
	"errors"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrGetActiveShiftQueryIsNotConstructed = errors.New(
		"GetActiveShiftQuery must be created via NewGetActiveShiftQuery constructor",
	)
)

// GetActiveShiftQuery retrieves the currently open shift with its running
// totals.
type GetActiveShiftQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveShiftQuery creates a query for the active shift.
func NewGetActiveShiftQuery() GetActiveShiftQuery {
	return GetActiveShiftQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveShiftQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShiftQueryIsNotConstructed)
}

// ShiftResponse represents shift information for the sales surface.
// Variance is only present once the shift is closed; ExpectedCash tracks the
// drawer at all times.
type ShiftResponse struct {
	ID           kernel.UUID
	StaffName    string
	StartedAt    time.Time
	EndedAt      *time.Time
	Active       bool
	StartingCash kernel.Money
	EndingCash   *kernel.Money
	TotalOrders  int
	TotalRevenue kernel.Money
	TotalTips    kernel.Money
	CashSales    kernel.Money
	CardSales    kernel.Money
	ExpectedCash kernel.Money
	Variance     *kernel.Money
	Notes        string
}
