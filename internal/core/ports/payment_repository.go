package ports

import (
	"context"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// A payment is written once and never mutated; an order has at most one.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrderID retrieves the payment for an order, if one exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
