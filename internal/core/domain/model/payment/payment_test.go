package payment_test

import (
	"testing"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/payment"
	"foodtruck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cents(c int64) kernel.Money {
	return kernel.NewMoneyFromCents(c)
}

func moneyPtr(c int64) *kernel.Money {
	m := kernel.NewMoneyFromCents(c)
	return &m
}

func TestNewPayment_Cash(t *testing.T) {
	t.Run("tendered cash computes change", func(t *testing.T) {
		// $15.00 against $11.42 total plus $2.00 tip leaves $1.58
		p, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(),
			cents(1142), payment.Cash, cents(200), moneyPtr(1500), time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, "1.58", p.Change().String())
		require.NotNil(t, p.Tendered())
		assert.Equal(t, "15.00", p.Tendered().String())
	})

	t.Run("no tendered amount means exact payment", func(t *testing.T) {
		p, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(),
			cents(1142), payment.Cash, cents(0), nil, time.Now(),
		)

		require.NoError(t, err)
		assert.Nil(t, p.Tendered())
		assert.True(t, p.Change().IsZero())
	})

	t.Run("exact tendered amount gives zero change", func(t *testing.T) {
		p, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(),
			cents(1142), payment.Cash, cents(200), moneyPtr(1342), time.Now(),
		)

		require.NoError(t, err)
		assert.True(t, p.Change().IsZero())
	})

	t.Run("insufficient cash is rejected", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(),
			cents(1142), payment.Cash, cents(200), moneyPtr(1000), time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrInsufficientCash)
	})
}

func TestNewPayment_Card(t *testing.T) {
	t.Run("card never computes change", func(t *testing.T) {
		p, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(),
			cents(1142), payment.Card, cents(300), moneyPtr(5000), time.Now(),
		)

		require.NoError(t, err)
		assert.Nil(t, p.Tendered())
		assert.True(t, p.Change().IsZero())
	})
}

func TestNewPayment_Validation(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("rejects negative tip", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), orderID, cents(1000), payment.Cash, cents(-1), nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), orderID, cents(-1), payment.Cash, cents(0), nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), orderID, cents(1000), payment.MethodUnknown, cents(0), nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), kernel.UUID{}, cents(1000), payment.Cash, cents(0), nil, time.Now(),
		)
		require.Error(t, err)
	})
}

func TestPayment_Reference(t *testing.T) {
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	p, err := payment.NewPayment(id, kernel.NewUUID(), cents(1000), payment.Card, cents(0), nil, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "550E8400", p.Reference())
}

func TestPayment_OffShift(t *testing.T) {
	p, err := payment.NewPayment(
		kernel.NewUUID(), kernel.NewUUID(), cents(1000), payment.Cash, cents(0), nil, time.Now(),
	)
	require.NoError(t, err)
	assert.False(t, p.OffShift())

	p.FlagOffShift()
	assert.True(t, p.OffShift())
}

func TestMethodFromString(t *testing.T) {
	m, err := payment.MethodFromString("cash")
	require.NoError(t, err)
	assert.Equal(t, payment.Cash, m)

	m, err = payment.MethodFromString("card")
	require.NoError(t, err)
	assert.Equal(t, payment.Card, m)

	_, err = payment.MethodFromString("check")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPayment_Validate(t *testing.T) {
	var notConstructed payment.Payment
	require.ErrorIs(t, notConstructed.Validate(), payment.ErrPaymentIsNotConstructed)
}
