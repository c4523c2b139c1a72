// Package shiftrepo provides data transfer objects and mapping functions for
// shift persistence. A partial unique index on the active flag enforces the
// at-most-one-active-shift rule at the storage level.
package shiftrepo

import (
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/shift"

	"github.com/google/uuid"
)

// ShiftDTO represents the database structure for persisting shift
// aggregates. Monetary columns store cents.
type ShiftDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffName    string
	StartedAt    time.Time `gorm:"index"`
	EndedAt      *time.Time
	IsActive     bool `gorm:"index:idx_shifts_active,unique,where:is_active"`
	StartingCash int64
	EndingCash   *int64
	TotalOrders  int
	TotalRevenue int64
	TotalTips    int64
	CashSales    int64
	CardSales    int64
	Notes        string
}

// TableName specifies the database table name for shift entities.
func (ShiftDTO) TableName() string {
	return "shifts"
}

// fromDomain converts a shift domain aggregate to its database
// representation.
func fromDomain(aggregate *shift.Shift) ShiftDTO {
	var endingCash *int64
	if e := aggregate.EndingCash(); e != nil {
		cents := e.Cents()
		endingCash = &cents
	}

	return ShiftDTO{
		ID:           aggregate.ID().Bytes(),
		StaffName:    aggregate.StaffName(),
		StartedAt:    aggregate.StartedAt(),
		EndedAt:      aggregate.EndedAt(),
		IsActive:     aggregate.Active(),
		StartingCash: aggregate.StartingCash().Cents(),
		EndingCash:   endingCash,
		TotalOrders:  aggregate.TotalOrders(),
		TotalRevenue: aggregate.TotalRevenue().Cents(),
		TotalTips:    aggregate.TotalTips().Cents(),
		CashSales:    aggregate.CashSales().Cents(),
		CardSales:    aggregate.CardSales().Cents(),
		Notes:        aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a shift domain aggregate using
// RestoreShift.
func toDomain(dto ShiftDTO) (*shift.Shift, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var endingCash *kernel.Money
	if dto.EndingCash != nil {
		money := kernel.NewMoneyFromCents(*dto.EndingCash)
		endingCash = &money
	}

	return shift.RestoreShift(
		id,
		dto.StaffName,
		dto.StartedAt,
		dto.EndedAt,
		dto.IsActive,
		kernel.NewMoneyFromCents(dto.StartingCash),
		endingCash,
		dto.TotalOrders,
		kernel.NewMoneyFromCents(dto.TotalRevenue),
		kernel.NewMoneyFromCents(dto.TotalTips),
		kernel.NewMoneyFromCents(dto.CashSales),
		kernel.NewMoneyFromCents(dto.CardSales),
		dto.Notes,
	)
}
