package queries

import (
	"errors"

	"foodtruck/internal/core/domain/services"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrGetWaitEstimateQueryIsNotConstructed = errors.New(
		"GetWaitEstimateQuery must be created via NewGetWaitEstimateQuery constructor",
	)
)

// GetWaitEstimateQuery retrieves the customer-facing wait estimate derived
// from current queue depth and recent prep history. Advisory output only; it
// never blocks order creation.
type GetWaitEstimateQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWaitEstimateQuery creates a query for the current wait estimate.
func NewGetWaitEstimateQuery() GetWaitEstimateQuery {
	return GetWaitEstimateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWaitEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetWaitEstimateQueryIsNotConstructed)
}

// WaitEstimateResponse is the advisory estimate shown to arriving customers.
type WaitEstimateResponse struct {
	OrdersAhead      int
	EstimatedMinutes int
	BusyLevel        services.BusyLevel
}
