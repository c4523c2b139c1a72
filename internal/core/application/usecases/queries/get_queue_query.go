package queries

import (
	"errors"

	"foodtruck/internal/pkg/guard"
)

var (
	ErrGetQueueQueryIsNotConstructed = errors.New(
		"GetQueueQuery must be created via NewGetQueueQuery constructor",
	)
)

// GetQueueQuery retrieves the customer-facing queue board: active and ready
// orders with a short item summary and a per-position wait estimate.
type GetQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetQueueQuery creates a query for the customer queue display.
func NewGetQueueQuery() GetQueueQuery {
	return GetQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueQueryIsNotConstructed)
}

// QueueOrderResponse represents one row on the customer queue board.
// Anonymous orders display as "Order #N". ItemsSummary lists at most three
// lines, then truncates with "+N more".
type QueueOrderResponse struct {
	Number           int
	CustomerName     string
	Status           string
	ItemsSummary     string
	EstimatedMinutes int
}
