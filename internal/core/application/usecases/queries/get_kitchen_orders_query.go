package queries

import (
	"errors"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
		"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
	)
)

// GetKitchenOrdersQuery retrieves the kitchen display's work list: today's
// orders still being cooked. An order leaves this view the moment it reaches
// ready.
type GetKitchenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenOrdersQuery creates a query for the kitchen display.
func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}

// KitchenItemResponse is one line on a kitchen ticket.
type KitchenItemResponse struct {
	Name     string
	Quantity int
}

// KitchenOrderResponse represents one ticket on the kitchen display.
// ElapsedSeconds is recomputed on every read so long-held orders age visibly
// without any background timer.
type KitchenOrderResponse struct {
	ID             kernel.UUID
	Number         int
	CustomerName   string
	Status         string
	ElapsedSeconds int
	Items          []KitchenItemResponse
	Notes          string
}
