package queries

import (
	"context"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenOrdersQueryHandler builds the kitchen display projection:
// today's pending and preparing orders, oldest first, with itemized lines.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen display queries.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle executes the query. Tickets come back in creation order so the
// kitchen works the queue front to back.
func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]KitchenOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_name,
			status,
			notes,
			created_at
		FROM orders
		WHERE status IN (?, ?) AND created_at >= ?
		ORDER BY created_at
	`, order.Pending, order.Preparing, startOfDay(now)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]KitchenOrderResponse, 0)
	ids := make([]uuid.UUID, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			id           uuid.UUID
			number       int
			customerName string
			status       int
			notes        string
			createdAt    time.Time
		)
		if err = rows.Scan(&id, &number, &customerName, &status, &notes, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		index[id] = len(tickets)
		ids = append(ids, id)
		tickets = append(tickets, KitchenOrderResponse{
			ID:             orderID,
			Number:         number,
			CustomerName:   customerName,
			Status:         order.Status(status).String(),
			ElapsedSeconds: int(now.Sub(createdAt).Seconds()),
			Notes:          notes,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(tickets) == 0 {
		return tickets, nil
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, name, quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID  uuid.UUID
			name     string
			quantity int
		)
		if err = itemRows.Scan(&orderID, &name, &quantity); err != nil {
			return nil, err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		tickets[i].Items = append(tickets[i].Items, KitchenItemResponse{Name: name, Quantity: quantity})
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
