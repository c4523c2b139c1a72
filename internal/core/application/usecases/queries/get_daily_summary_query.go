package queries

import (
	"errors"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrGetDailySummaryQueryIsNotConstructed = errors.New(
		"GetDailySummaryQuery must be created via NewGetDailySummaryQuery constructor",
	)
)

// GetDailySummaryQuery aggregates one calendar day's order totals. The
// midnight rollover job runs it for the closing day before the order-number
// counter moves to the next day's row.
type GetDailySummaryQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetDailySummaryQuery creates a query for one day's totals. Any moment
// within the day selects that day.
func NewGetDailySummaryQuery(day time.Time) GetDailySummaryQuery {
	return GetDailySummaryQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDailySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySummaryQueryIsNotConstructed)
}

// Day returns the moment selecting the aggregated day.
func (q GetDailySummaryQuery) Day() time.Time {
	return q.day
}

// DailySummaryResponse carries one day's aggregated order totals.
// PaidRevenue sums the totals of paid orders only.
type DailySummaryResponse struct {
	Day         time.Time
	TotalOrders int
	PaidRevenue kernel.Money
}
