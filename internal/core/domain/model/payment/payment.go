package payment

import (
	"errors"
	"strings"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment factory method.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records the money taken for a single order. An order receives at
// most one payment; the base amount is the order total, with the tip tracked
// separately so drawer accounting stays exact.
//
// Cash math:
//   - an explicit tendered amount must cover amount + tip, and
//     change = tendered - (amount + tip)
//   - cash without a tendered amount is treated as exact payment (change 0)
//   - card payments never compute change
//
// A payment taken while no shift is active is flagged off-shift; it is never
// retroactively attributed to a later shift.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	method    Method
	tip       kernel.Money
	tendered  *kernel.Money
	change    kernel.Money
	reference string
	offShift  bool
	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a Payment with validation.
//
// The amount is the order total excluding tip. For cash payments, tendered may
// be nil (exact payment). Returns InsufficientCashError when tendered does not
// cover amount + tip.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	tip kernel.Money,
	tendered *kernel.Money,
	now time.Time,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if tip.IsNegative() {
		return nil, errs.NewValueIsInvalidError("tip")
	}

	p := &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		method:        method,
		tip:           tip,
		reference:     referenceFrom(id),
		createdAt:     now,
		isConstructed: true,
	}

	if method == Cash && tendered != nil {
		due := amount.Add(tip)
		if tendered.LessThan(due) {
			return nil, errs.NewInsufficientCashError(tendered.String(), due.String())
		}
		t := *tendered
		p.tendered = &t
		p.change = t.Sub(due)
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persisted state.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	tip kernel.Money,
	tendered *kernel.Money,
	change kernel.Money,
	reference string,
	offShift bool,
	createdAt time.Time,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		method:        method,
		tip:           tip,
		tendered:      tendered,
		change:        change,
		reference:     reference,
		offShift:      offShift,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// referenceFrom derives the short receipt reference from the payment id.
func referenceFrom(id kernel.UUID) string {
	return strings.ToUpper(id.String()[:8])
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the base amount charged (the order total, excluding tip).
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns the payment method.
func (p *Payment) Method() Method {
	return p.method
}

// Tip returns the tip amount.
func (p *Payment) Tip() kernel.Money {
	return p.tip
}

// Tendered returns the cash tendered, or nil for card and exact-cash payments.
func (p *Payment) Tendered() *kernel.Money {
	return p.tendered
}

// Change returns the change due back to the customer.
func (p *Payment) Change() kernel.Money {
	return p.change
}

// Reference returns the short receipt reference code.
func (p *Payment) Reference() string {
	return p.reference
}

// OffShift reports whether the payment was taken while no shift was active.
func (p *Payment) OffShift() bool {
	return p.offShift
}

// CreatedAt returns when the payment was recorded.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// FlagOffShift marks the payment as taken outside any active shift.
// Off-shift payments are tracked for later reconciliation but contribute to
// no shift ledger.
func (p *Payment) FlagOffShift() {
	p.offShift = true
}
