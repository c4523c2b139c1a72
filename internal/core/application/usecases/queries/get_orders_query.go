// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database, bypassing the domain model,
// and return plain response structs shaped for the calling surface.
//
// Every projection is recomputed on each read; nothing is cached beyond a
// single response. Display surfaces poll these queries on a fixed interval
// and must treat each result as a snapshot.
package queries

import (
	"errors"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders for the POS order list, optionally
// restricted to today's orders.
//
// Example:
//
//	query := NewGetOrdersQuery(true)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct {
	todayOnly bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// When todayOnly is true only orders created since local midnight are
// returned.
func NewGetOrdersQuery(todayOnly bool) GetOrdersQuery {
	return GetOrdersQuery{
		todayOnly: todayOnly,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// TodayOnly reports whether the listing is restricted to today's orders.
func (q GetOrdersQuery) TodayOnly() bool {
	return q.todayOnly
}

// OrderItemResponse represents one order line in a query response.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  kernel.Money
	Subtotal   kernel.Money
}

// OrderResponse represents full order information for the POS surface.
type OrderResponse struct {
	ID           kernel.UUID
	Number       int
	CustomerName string
	Status       string
	Items        []OrderItemResponse
	Subtotal     kernel.Money
	Tax          kernel.Money
	Total        kernel.Money
	Paid         bool
	Notes        string
	CreatedAt    time.Time
	ReadyAt      *time.Time
	CompletedAt  *time.Time
}
