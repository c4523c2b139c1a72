package kernel

import (
	"fmt"

	"foodtruck/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var centsFactor = decimal.NewFromInt(100)

// Money is a value object representing a monetary amount in the minor
// currency unit. Internally it is an exact integer number of cents, so
// additions and comparisons never lose precision. Fractional inputs (JSON
// request bodies, tax rates) go through shopspring/decimal and are rounded
// half-up to the cent at the boundary.
//
// The zero value is a valid amount of 0.00. Money serializes to JSON as a
// bare number with exactly two fractional digits.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an exact number of cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromDecimal creates a Money from a decimal amount in major units,
// rounding half-up to the cent.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{cents: d.Mul(centsFactor).Round(0).IntPart()}
}

// ParseMoney parses a decimal string such as "11.42" into a Money,
// rounding half-up to the cent.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoneyFromDecimal(d), nil
}

// Cents returns the amount as an exact number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount as a decimal in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// ApplyRate multiplies the amount by a fractional rate (e.g. a tax rate of
// 0.0875) and rounds half-up to the cent.
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return NewMoneyFromDecimal(m.Decimal().Mul(rate))
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with exactly two fractional digits, e.g. "11.42".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON serializes the amount as a bare JSON number with exactly two
// fractional digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON parses a JSON number (or quoted decimal string) into a Money,
// rounding half-up to the cent.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" || s == "" {
		*m = Money{}
		return nil
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %q into Money: %w", data, err)
	}
	*m = parsed
	return nil
}
