package ports

import (
	"context"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
)

// ShiftSummary carries the aggregated numbers of a closed shift to the
// reporting collaborator.
type ShiftSummary struct {
	ShiftID      kernel.UUID
	StaffName    string
	StartedAt    time.Time
	EndedAt      time.Time
	TotalOrders  int
	TotalRevenue kernel.Money
	TotalTips    kernel.Money
	CashSales    kernel.Money
	CardSales    kernel.Money
	ExpectedCash kernel.Money
	EndingCash   kernel.Money
	Variance     kernel.Money
}

// DaySummary carries the previous day's totals at the midnight rollover.
type DaySummary struct {
	Day         time.Time
	TotalOrders int
	PaidRevenue kernel.Money
}

// Reporter is the external collaborator that consumes aggregated numbers from
// the core. Implementations must not fail the triggering operation; emission
// happens after the owning transaction commits.
type Reporter interface {
	// ShiftClosed reports the final ledger of a closed shift.
	ShiftClosed(ctx context.Context, summary ShiftSummary)

	// DayRolled reports the previous day's totals when the order-number day
	// boundary passes.
	DayRolled(ctx context.Context, summary DaySummary)
}
