package ports

import (
	"context"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; terminal statuses supersede them.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Line items are
	// immutable after creation; only the lifecycle fields change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the remainder of
	// the surrounding transaction. Mutation paths use this so two concurrent
	// status changes on the same order never both succeed past the same edge.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextOrderNumber atomically allocates the next sequential order number
	// for the given calendar day. Numbers start at 1 each day and are
	// gap-free and strictly increasing under concurrent creations.
	NextOrderNumber(ctx context.Context, day time.Time) (int, error)
}
