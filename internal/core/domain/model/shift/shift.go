package shift

import (
	"errors"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/payment"
	"foodtruck/internal/pkg/errs"
)

// ErrShiftIsNotConstructed is returned when a Shift instance was not created
// through the NewShift or RestoreShift factory methods.
var ErrShiftIsNotConstructed = errors.New("Shift must be created via NewShift constructor")

// Shift is the cash-drawer ledger for one staff member's working period.
// At most one shift is active process-wide at any time; that singleton
// constraint is enforced by the shift store, not here.
//
// Running totals accumulate once per accepted payment:
//   - total orders (one payment per order, so one increment per order)
//   - total revenue (base amounts)
//   - total tips
//   - exactly one of cash sales / card sales by the base amount; tips are
//     excluded from the split so drawer accounting stays exact
//
// On close the shift computes expected cash = starting cash + cash sales, and
// variance = ending cash - expected cash. A closed shift is immutable history.
type Shift struct {
	id           kernel.UUID
	staffName    string
	startedAt    time.Time
	endedAt      *time.Time
	active       bool
	startingCash kernel.Money
	endingCash   *kernel.Money
	totalOrders  int
	totalRevenue kernel.Money
	totalTips    kernel.Money
	cashSales    kernel.Money
	cardSales    kernel.Money
	notes        string

	isConstructed bool
}

// NewShift opens a shift for the given staff member with the counted
// starting cash. Staff name is required; starting cash must not be negative.
func NewShift(id kernel.UUID, staffName string, startingCash kernel.Money, now time.Time) (*Shift, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if staffName == "" {
		return nil, errs.NewValueIsRequiredError("staff_name")
	}
	if startingCash.IsNegative() {
		return nil, errs.NewValueIsInvalidError("starting_cash")
	}

	return &Shift{
		id:            id,
		staffName:     staffName,
		startedAt:     now,
		active:        true,
		startingCash:  startingCash,
		isConstructed: true,
	}, nil
}

// RestoreShift reconstructs a Shift from persisted state.
func RestoreShift(
	id kernel.UUID,
	staffName string,
	startedAt time.Time,
	endedAt *time.Time,
	active bool,
	startingCash kernel.Money,
	endingCash *kernel.Money,
	totalOrders int,
	totalRevenue kernel.Money,
	totalTips kernel.Money,
	cashSales kernel.Money,
	cardSales kernel.Money,
	notes string,
) (*Shift, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if staffName == "" {
		return nil, errs.NewValueIsRequiredError("staff_name")
	}

	return &Shift{
		id:            id,
		staffName:     staffName,
		startedAt:     startedAt,
		endedAt:       endedAt,
		active:        active,
		startingCash:  startingCash,
		endingCash:    endingCash,
		totalOrders:   totalOrders,
		totalRevenue:  totalRevenue,
		totalTips:     totalTips,
		cashSales:     cashSales,
		cardSales:     cardSales,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shift instance was properly constructed.
func (s *Shift) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShiftIsNotConstructed
	}
	return nil
}

// ID returns the shift's unique identifier.
func (s *Shift) ID() kernel.UUID {
	return s.id
}

// StaffName returns the staff member holding the shift.
func (s *Shift) StaffName() string {
	return s.staffName
}

// StartedAt returns when the shift was opened.
func (s *Shift) StartedAt() time.Time {
	return s.startedAt
}

// EndedAt returns when the shift was closed, or nil while active.
func (s *Shift) EndedAt() *time.Time {
	return s.endedAt
}

// Active reports whether the shift is still open.
func (s *Shift) Active() bool {
	return s.active
}

// StartingCash returns the drawer amount counted at shift start.
func (s *Shift) StartingCash() kernel.Money {
	return s.startingCash
}

// EndingCash returns the drawer amount counted at close, or nil while active.
func (s *Shift) EndingCash() *kernel.Money {
	return s.endingCash
}

// TotalOrders returns the number of distinct orders paid during the shift.
func (s *Shift) TotalOrders() int {
	return s.totalOrders
}

// TotalRevenue returns the sum of base payment amounts.
func (s *Shift) TotalRevenue() kernel.Money {
	return s.totalRevenue
}

// TotalTips returns the sum of tips.
func (s *Shift) TotalTips() kernel.Money {
	return s.totalTips
}

// CashSales returns the cash portion of the sales split (tips excluded).
func (s *Shift) CashSales() kernel.Money {
	return s.cashSales
}

// CardSales returns the card portion of the sales split (tips excluded).
func (s *Shift) CardSales() kernel.Money {
	return s.cardSales
}

// Notes returns the closing notes.
func (s *Shift) Notes() string {
	return s.notes
}

// ExpectedCash returns starting cash plus accumulated cash sales: what the
// drawer should physically contain.
func (s *Shift) ExpectedCash() kernel.Money {
	return s.startingCash.Add(s.cashSales)
}

// Variance returns ending cash minus expected cash. The second return value
// is false while the shift is still active, since variance is only meaningful
// once the drawer has been counted at close.
func (s *Shift) Variance() (kernel.Money, bool) {
	if s.active || s.endingCash == nil {
		return kernel.Money{}, false
	}
	return s.endingCash.Sub(s.ExpectedCash()), true
}

// RecordPayment folds one accepted payment into the running totals:
// amount into revenue and into exactly one of the cash/card split, tip into
// tips, and one more distinct paid order.
//
// Callers must serialize invocations on the same shift (the store runs this
// inside a locked read-modify-write); the method itself fails with
// ErrNoActiveShift when the shift is already closed so that a payment racing
// a close is rejected rather than silently dropped.
func (s *Shift) RecordPayment(amount kernel.Money, tip kernel.Money, method payment.Method) error {
	if !s.active {
		return errs.ErrNoActiveShift
	}
	if err := method.Validate(); err != nil {
		return err
	}

	s.totalOrders++
	s.totalRevenue = s.totalRevenue.Add(amount)
	s.totalTips = s.totalTips.Add(tip)
	switch method {
	case payment.Cash:
		s.cashSales = s.cashSales.Add(amount)
	case payment.Card:
		s.cardSales = s.cardSales.Add(amount)
	}

	return nil
}

// Close ends the shift with the counted ending cash and optional notes.
// Fails with ErrNoActiveShift when the shift is already closed. After Close
// the shift is immutable history and Variance becomes available.
func (s *Shift) Close(endingCash kernel.Money, notes string, now time.Time) error {
	if !s.active {
		return errs.ErrNoActiveShift
	}
	if endingCash.IsNegative() {
		return errs.NewValueIsInvalidError("ending_cash")
	}

	cash := endingCash
	s.endingCash = &cash
	s.notes = notes
	s.endedAt = &now
	s.active = false
	return nil
}
