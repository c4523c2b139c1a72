// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodtruck/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ShiftRepoFactory provides access to the shift repository within a transaction.
	ShiftRepoFactory interface {
		ShiftRepository() ports.ShiftRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// creation and status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShiftUoW manages transactions for shift-only operations:
	// start and close.
	ShiftUoW interface {
		TxManager
		ShiftRepoFactory
	}

	// ShiftUoWFactory creates new shift unit of work instances.
	ShiftUoWFactory interface {
		Create() ShiftUoW
	}

	// PaymentUoW manages the payment transaction, which spans all three
	// aggregates: the payment record is inserted, the order's paid flag flips
	// and the active shift's running totals increment, all or nothing.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		ShiftRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
