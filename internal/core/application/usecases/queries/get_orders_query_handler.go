package queries

import (
	"context"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders from the database for the POS list.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first with their line
// items attached.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
	`
	args := make([]any, 0, 1)
	if query.TodayOnly() {
		sql += ` WHERE created_at >= ?`
		args = append(args, startOfDay(time.Now()))
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// rowScanner is the subset of sql.Rows both single- and multi-row order
// queries scan through.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		id           uuid.UUID
		number       int
		customerName string
		status       int
		subtotal     int64
		tax          int64
		total        int64
		paid         bool
		notes        string
		createdAt    time.Time
		readyAt      *time.Time
		completedAt  *time.Time
	)

	err := row.Scan(
		&id, &number, &customerName, &status,
		&subtotal, &tax, &total, &paid, &notes,
		&createdAt, &readyAt, &completedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:           orderID,
		Number:       number,
		CustomerName: customerName,
		Status:       order.Status(status).String(),
		Subtotal:     kernel.NewMoneyFromCents(subtotal),
		Tax:          kernel.NewMoneyFromCents(tax),
		Total:        kernel.NewMoneyFromCents(total),
		Paid:         paid,
		Notes:        notes,
		CreatedAt:    createdAt,
		ReadyAt:      readyAt,
		CompletedAt:  completedAt,
	}, nil
}

// attachItems loads the line items for all given orders in one query and
// distributes them in response order.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.Bytes())
		index[o.ID.Bytes()] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID    uuid.UUID
			menuItemID uuid.UUID
			name       string
			quantity   int
			unitPrice  int64
		)
		if err = rows.Scan(&orderID, &menuItemID, &name, &quantity, &unitPrice); err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return idErr
		}

		price := kernel.NewMoneyFromCents(unitPrice)
		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, OrderItemResponse{
			MenuItemID: itemID,
			Name:       name,
			Quantity:   quantity,
			UnitPrice:  price,
			Subtotal:   price.MulInt(quantity),
		})
	}

	return rows.Err()
}

// startOfDay returns local midnight of the given moment. The daily order
// window and order-number reset both run on server local time.
func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
