package order

import (
	"errors"
	"fmt"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a food-service order. It owns the line
// items, the money totals, the paid flag, and the status lifecycle from
// pending through completion or cancellation.
//
// Order maintains these invariants:
//   - total = subtotal + tax, always derived from the line items, never hand-edited
//   - line items are fixed at creation; prices are snapshots from the catalog
//   - status transitions follow the table in Status
//   - completion requires the order to be paid
//   - orders are never deleted, only superseded by completed/cancelled
//
// All fields are private; mutation happens only through ChangeStatus, Bump,
// and MarkPaid, so every path goes through the state machine.
type Order struct {
	id           kernel.UUID
	number       int
	customerName string
	items        []Item
	status       Status
	subtotal     kernel.Money
	tax          kernel.Money
	total        kernel.Money
	paid         bool
	notes        string
	createdAt    time.Time
	readyAt      *time.Time
	completedAt  *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in pending status with validation.
//
// The number is the sequential daily order number assigned by the store. The
// item list must be non-empty; subtotal is derived from the items, tax is
// computed once here from the configured rate with half-up rounding to the
// cent, and total = subtotal + tax. Tax is never recomputed afterwards.
func NewOrder(
	id kernel.UUID,
	number int,
	customerName string,
	notes string,
	items []Item,
	taxRate decimal.Decimal,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%d is not at least 1", number),
		)
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if taxRate.IsNegative() {
		return nil, errs.NewValueIsInvalidError("tax rate")
	}

	var subtotal kernel.Money
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(item.Subtotal())
	}
	tax := subtotal.ApplyRate(taxRate)

	return &Order{
		id:            id,
		number:        number,
		customerName:  customerName,
		items:         items,
		status:        Pending,
		subtotal:      subtotal,
		tax:           tax,
		total:         subtotal.Add(tax),
		notes:         notes,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// The stored totals are trusted as-is; they were derived at creation time and
// the total = subtotal + tax invariant is re-checked here.
func RestoreOrder(
	id kernel.UUID,
	number int,
	customerName string,
	notes string,
	items []Item,
	status Status,
	subtotal kernel.Money,
	tax kernel.Money,
	total kernel.Money,
	paid bool,
	createdAt time.Time,
	readyAt *time.Time,
	completedAt *time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if !total.IsEqual(subtotal.Add(tax)) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s is not subtotal %s plus tax %s", total, subtotal, tax),
		)
	}

	return &Order{
		id:            id,
		number:        number,
		customerName:  customerName,
		items:         items,
		status:        status,
		subtotal:      subtotal,
		tax:           tax,
		total:         total,
		paid:          paid,
		notes:         notes,
		createdAt:     createdAt,
		readyAt:       readyAt,
		completedAt:   completedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the sequential daily order number.
func (o *Order) Number() int {
	return o.number
}

// CustomerName returns the customer's name, possibly empty.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Subtotal returns the sum of the line item subtotals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax computed at creation time.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns subtotal plus tax.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Paid reports whether a payment has been recorded for the order.
func (o *Order) Paid() bool {
	return o.paid
}

// Notes returns the free-form order notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ReadyAt returns when the order reached ready status, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// ChangeStatus moves the order to the requested status along an allowed edge.
//
// Business rules:
//   - The transition must be in the Status table, otherwise InvalidTransitionError
//   - Moving to Completed additionally requires the order to be paid,
//     otherwise PaymentRequiredError
//
// Reaching ready stamps ReadyAt (used for prep-time history); reaching
// completed stamps CompletedAt.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	if target == Completed && !o.paid {
		return errs.NewPaymentRequiredError(o.number)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	return nil
}

// Bump advances the order one step along the canonical path
// (pending -> preparing -> ready). Bumping a ready order is a no-op.
func (o *Order) Bump(now time.Time) error {
	newStatus, err := o.status.Bump()
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	return nil
}

// MarkPaid flips the order's paid flag after a successful payment.
// A second call fails with AlreadyPaidError; the order total is fixed and an
// order receives at most one payment.
func (o *Order) MarkPaid() error {
	if o.paid {
		return errs.NewAlreadyPaidError(o.number)
	}
	o.paid = true
	return nil
}

func (o *Order) applyStatus(newStatus Status, now time.Time) {
	if newStatus == Ready && o.status != Ready {
		t := now
		o.readyAt = &t
	}
	if newStatus == Completed {
		t := now
		o.completedAt = &t
	}
	o.status = newStatus
}
