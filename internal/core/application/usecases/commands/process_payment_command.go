package commands

import (
	"errors"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/payment"
	"foodtruck/internal/pkg/errs"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrProcessPaymentCommandIsNotConstructed = errors.New(
		"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
	)
)

// ProcessPaymentCommand represents a request to settle an order. The amount
// is the order total as the terminal displayed it; the handler cross-checks
// it against the authoritative total so a stale terminal cannot charge the
// wrong price. Tendered is optional and only meaningful for cash.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	amount   kernel.Money
	method   payment.Method
	tip      kernel.Money
	tendered *kernel.Money

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to record a payment.
// Tip defaults to zero; tendered may be nil for exact cash or any card
// payment.
func NewProcessPaymentCommand(
	orderID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
	tip kernel.Money,
	tendered *kernel.Money,
) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
		cmd.setTip(tip),
		cmd.setTendered(tendered),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the charged amount as stated by the caller.
func (c ProcessPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the payment method.
func (c ProcessPaymentCommand) Method() payment.Method {
	return c.method
}

// Tip returns the tip amount.
func (c ProcessPaymentCommand) Tip() kernel.Money {
	return c.tip
}

// Tendered returns the cash handed over, or nil for exact/card payments.
func (c ProcessPaymentCommand) Tendered() *kernel.Money {
	return c.tendered
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setAmount(amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *ProcessPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *ProcessPaymentCommand) setTip(tip kernel.Money) error {
	if tip.IsNegative() {
		return errs.NewValueIsInvalidError("tip")
	}

	c.tip = tip
	return nil
}

func (c *ProcessPaymentCommand) setTendered(tendered *kernel.Money) error {
	if tendered != nil && tendered.IsNegative() {
		return errs.NewValueIsInvalidError("cash_tendered")
	}

	c.tendered = tendered
	return nil
}
