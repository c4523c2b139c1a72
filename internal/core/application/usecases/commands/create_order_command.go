package commands

import (
	"errors"
	"fmt"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is one requested line of a new order: a menu item reference and a
// quantity. Name and price snapshots are captured from the catalog by the
// handler, not supplied by the caller.
type OrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a request from the POS terminal to create a
// new order. The cart must be non-empty and every quantity at least 1;
// violations are rejected here, before any state mutation.
//
// Example:
//
//	lines := []commands.OrderLine{{MenuItemID: tacoID, Quantity: 2}}
//	cmd, err := commands.NewCreateOrderCommand("Alex", "no onions", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	notes        string
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Customer name and notes are optional; the line list is not.
func NewCreateOrderCommand(customerName, notes string, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setNotes(notes),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the optional customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Notes returns the optional free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setNotes(notes string) error {
	c.notes = notes
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("line %d: %d is not at least 1", i, line.Quantity),
			)
		}
	}

	c.lines = lines
	return nil
}
