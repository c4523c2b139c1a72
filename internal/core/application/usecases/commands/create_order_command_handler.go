package commands

import (
	"context"
	"fmt"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/core/ports"
	"foodtruck/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The handler resolves every requested line against the menu catalog,
// snapshotting name and price so later catalog edits never alter this order,
// computes tax once from the configured rate, allocates the next daily order
// number, and persists the order in pending status where the kitchen and
// queue projections pick it up on their next poll.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MenuCatalog
	taxRate    decimal.Decimal
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence, the menu catalog
// collaborator, and the process-wide tax rate.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.MenuCatalog,
	taxRate decimal.Decimal,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		taxRate:    taxRate,
	}
}

// Handle processes the order creation command and returns the created order.
//
// Unknown or unavailable menu items fail validation before any state
// mutation. Catalog lookups happen before the transaction opens so no
// external call sits inside the critical section.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := h.resolveLines(ctx, cmd.Lines())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	orderRepo := uow.OrderRepository()

	number, err := orderRepo.NextOrderNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(), number, cmd.CustomerName(), cmd.Notes(), items, h.taxRate, now,
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// resolveLines turns requested lines into order items with catalog snapshots.
// An unknown or unavailable menu item is the caller's mistake, so both map to
// a validation error rather than a not-found.
func (h *CreateOrderCommandHandler) resolveLines(ctx context.Context, lines []OrderLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		snapshot, err := h.catalog.Item(ctx, line.MenuItemID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu_item_id", err)
		}
		if !snapshot.Available {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"menu_item_id",
				fmt.Errorf("%s is not available", snapshot.Name),
			)
		}

		item, err := order.NewItem(snapshot.ID, snapshot.Name, line.Quantity, snapshot.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
