package queries

import (
	"context"

	"foodtruck/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDailySummaryQueryHandler aggregates a day's order count and paid
// revenue.
type GetDailySummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDailySummaryQueryHandler creates a handler for daily summary queries.
func NewGetDailySummaryQueryHandler(db *gorm.DB) GetDailySummaryQueryHandler {
	return GetDailySummaryQueryHandler{db: db}
}

// Handle executes the query over the day's local-midnight-to-midnight window.
func (h GetDailySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDailySummaryQuery,
) (DailySummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return DailySummaryResponse{}, err
	}

	from := startOfDay(query.Day())
	to := from.AddDate(0, 0, 1)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total) FILTER (WHERE paid), 0)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
	`, from, to).Row()

	var (
		totalOrders int
		paidRevenue int64
	)
	if err := row.Scan(&totalOrders, &paidRevenue); err != nil {
		return DailySummaryResponse{}, err
	}

	return DailySummaryResponse{
		Day:         from,
		TotalOrders: totalOrders,
		PaidRevenue: kernel.NewMoneyFromCents(paidRevenue),
	}, nil
}
