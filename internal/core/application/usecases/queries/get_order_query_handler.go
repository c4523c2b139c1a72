package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodtruck/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_name,
			status,
			subtotal,
			tax,
			total,
			paid,
			notes,
			created_at,
			ready_at,
			completed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	orders := []OrderResponse{resp}
	if err = attachItems(ctx, h.db, orders); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
