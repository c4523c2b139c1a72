package queries

import (
	"context"
	"time"

	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/core/domain/services"

	"gorm.io/gorm"
)

// prepHistoryWindow bounds the rolling average so one slow afternoon doesn't
// haunt the estimate all day.
const prepHistoryWindow = 20

// GetWaitEstimateQueryHandler derives the current wait estimate from queue
// depth and the rolling average prep duration of recently readied orders.
type GetWaitEstimateQueryHandler struct {
	db        *gorm.DB
	estimator services.WaitEstimator
}

// NewGetWaitEstimateQueryHandler creates a handler for wait estimate queries.
func NewGetWaitEstimateQueryHandler(db *gorm.DB, estimator services.WaitEstimator) GetWaitEstimateQueryHandler {
	return GetWaitEstimateQueryHandler{db: db, estimator: estimator}
}

// Handle executes the query. Orders ahead counts everything not yet ready
// (pending plus preparing).
func (h GetWaitEstimateQueryHandler) Handle(
	ctx context.Context,
	query GetWaitEstimateQuery,
) (WaitEstimateResponse, error) {
	if err := query.Validate(); err != nil {
		return WaitEstimateResponse{}, err
	}

	var ordersAhead int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE status IN (?, ?)
	`, order.Pending, order.Preparing).Scan(&ordersAhead).Error
	if err != nil {
		return WaitEstimateResponse{}, err
	}

	history, err := recentPrepDurations(ctx, h.db)
	if err != nil {
		return WaitEstimateResponse{}, err
	}

	estimate := h.estimator.Estimate(int(ordersAhead), history)

	return WaitEstimateResponse{
		OrdersAhead:      estimate.OrdersAhead,
		EstimatedMinutes: estimate.EstimatedMinutes,
		BusyLevel:        estimate.Level,
	}, nil
}

// recentPrepDurations returns the pending-to-ready durations of the most
// recent orders that reached ready today, newest first.
func recentPrepDurations(ctx context.Context, db *gorm.DB) ([]time.Duration, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT created_at, ready_at
		FROM orders
		WHERE ready_at IS NOT NULL AND ready_at >= ?
		ORDER BY ready_at DESC
		LIMIT ?
	`, startOfDay(time.Now()), prepHistoryWindow).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	durations := make([]time.Duration, 0, prepHistoryWindow)
	for rows.Next() {
		var createdAt, readyAt time.Time
		if err = rows.Scan(&createdAt, &readyAt); err != nil {
			return nil, err
		}
		durations = append(durations, readyAt.Sub(createdAt))
	}

	return durations, rows.Err()
}
