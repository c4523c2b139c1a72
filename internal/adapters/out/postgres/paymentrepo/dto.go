// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. Payments are written once and never mutated; the
// unique index on order_id backstops the one-payment-per-order rule.
package paymentrepo

import (
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// records. Monetary columns store cents.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount    int64
	Method    int
	Tip       int64
	Tendered  *int64
	Change    int64
	Reference string
	OffShift  bool
	CreatedAt time.Time
}

// TableName specifies the database table name for payment records.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database
// representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	var tendered *int64
	if t := aggregate.Tendered(); t != nil {
		cents := t.Cents()
		tendered = &cents
	}

	return PaymentDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		Amount:    aggregate.Amount().Cents(),
		Method:    int(aggregate.Method()),
		Tip:       aggregate.Tip().Cents(),
		Tendered:  tendered,
		Change:    aggregate.Change().Cents(),
		Reference: aggregate.Reference(),
		OffShift:  aggregate.OffShift(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var tendered *kernel.Money
	if dto.Tendered != nil {
		money := kernel.NewMoneyFromCents(*dto.Tendered)
		tendered = &money
	}

	return payment.RestorePayment(
		id,
		orderID,
		kernel.NewMoneyFromCents(dto.Amount),
		payment.Method(dto.Method),
		kernel.NewMoneyFromCents(dto.Tip),
		tendered,
		kernel.NewMoneyFromCents(dto.Change),
		dto.Reference,
		dto.OffShift,
		dto.CreatedAt,
	)
}
