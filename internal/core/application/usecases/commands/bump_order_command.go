package commands

import (
	"errors"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrBumpOrderCommandIsNotConstructed = errors.New(
		"BumpOrderCommand must be created via NewBumpOrderCommand constructor",
	)
)

// BumpOrderCommand represents a kitchen-display tap that advances an order
// one step along the canonical path (pending to preparing, preparing to
// ready). Bumping an order that is already ready is a no-op, so a
// touchscreen double-tap is harmless.
type BumpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBumpOrderCommand creates a command to bump an order forward.
func NewBumpOrderCommand(orderID kernel.UUID) (BumpOrderCommand, error) {
	cmd := BumpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return BumpOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BumpOrderCommand) Validate() error {
	return c.guard.Validate(ErrBumpOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c BumpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *BumpOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
