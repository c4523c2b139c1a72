package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShiftQueryHandler retrieves the active shift from the database.
type GetActiveShiftQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShiftQueryHandler creates a handler for active shift lookups.
func NewGetActiveShiftQueryHandler(db *gorm.DB) GetActiveShiftQueryHandler {
	return GetActiveShiftQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no shift is
// open.
func (h GetActiveShiftQueryHandler) Handle(ctx context.Context, query GetActiveShiftQuery) (ShiftResponse, error) {
	if err := query.Validate(); err != nil {
		return ShiftResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(shiftSelect + ` WHERE is_active`).Row()

	resp, err := scanShiftRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShiftResponse{}, errs.NewObjectNotFoundError("active shift", nil)
		}
		return ShiftResponse{}, err
	}

	return resp, nil
}

const shiftSelect = `
	SELECT
		id,
		staff_name,
		started_at,
		ended_at,
		is_active,
		starting_cash,
		ending_cash,
		total_orders,
		total_revenue,
		total_tips,
		cash_sales,
		card_sales,
		notes
	FROM shifts
`

func scanShiftRow(row rowScanner) (ShiftResponse, error) {
	var (
		id           uuid.UUID
		staffName    string
		startedAt    time.Time
		endedAt      *time.Time
		isActive     bool
		startingCash int64
		endingCash   *int64
		totalOrders  int
		totalRevenue int64
		totalTips    int64
		cashSales    int64
		cardSales    int64
		notes        string
	)

	err := row.Scan(
		&id, &staffName, &startedAt, &endedAt, &isActive,
		&startingCash, &endingCash, &totalOrders,
		&totalRevenue, &totalTips, &cashSales, &cardSales, &notes,
	)
	if err != nil {
		return ShiftResponse{}, err
	}

	shiftID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShiftResponse{}, err
	}

	resp := ShiftResponse{
		ID:           shiftID,
		StaffName:    staffName,
		StartedAt:    startedAt,
		EndedAt:      endedAt,
		Active:       isActive,
		StartingCash: kernel.NewMoneyFromCents(startingCash),
		TotalOrders:  totalOrders,
		TotalRevenue: kernel.NewMoneyFromCents(totalRevenue),
		TotalTips:    kernel.NewMoneyFromCents(totalTips),
		CashSales:    kernel.NewMoneyFromCents(cashSales),
		CardSales:    kernel.NewMoneyFromCents(cardSales),
		Notes:        notes,
	}
	resp.ExpectedCash = resp.StartingCash.Add(resp.CashSales)

	if endingCash != nil {
		ending := kernel.NewMoneyFromCents(*endingCash)
		resp.EndingCash = &ending
		if !isActive {
			variance := ending.Sub(resp.ExpectedCash)
			resp.Variance = &variance
		}
	}

	return resp, nil
}
