package commands

import (
	"context"
	"time"

	"foodtruck/internal/core/domain/model/order"
)

// BumpOrderCommandHandler advances an order one step along the canonical
// path. Like the explicit status change, it locks the order row so two
// concurrent bumps serialize: the first advances, the second either no-ops
// at ready or fails on a terminal status.
type BumpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBumpOrderCommandHandler creates a handler for kitchen bump operations.
func NewBumpOrderCommandHandler(uowFactory OrderUoWFactory) BumpOrderCommandHandler {
	return BumpOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bump command and returns the (possibly unchanged)
// order. A ready order passes through untouched.
func (h *BumpOrderCommandHandler) Handle(ctx context.Context, cmd BumpOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Bump(time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
