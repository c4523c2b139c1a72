package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// queueSummaryLimit caps how many lines the item summary spells out before
// truncating to "+N more". The queue board has one line per order.
const queueSummaryLimit = 3

// GetQueueQueryHandler builds the customer queue projection: today's pending,
// preparing and ready orders in creation order, each with a compact item
// summary and its own wait estimate based on queue position.
type GetQueueQueryHandler struct {
	db        *gorm.DB
	estimator services.WaitEstimator
}

// NewGetQueueQueryHandler creates a handler for customer queue queries.
func NewGetQueueQueryHandler(db *gorm.DB, estimator services.WaitEstimator) GetQueueQueryHandler {
	return GetQueueQueryHandler{db: db, estimator: estimator}
}

// Handle executes the query. Ready orders show a zero wait; orders still in
// the kitchen get an estimate proportional to their position in line.
func (h GetQueueQueryHandler) Handle(ctx context.Context, query GetQueueQuery) ([]QueueOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_name,
			status
		FROM orders
		WHERE status IN (?, ?, ?) AND created_at >= ?
		ORDER BY created_at
	`, order.Pending, order.Preparing, order.Ready, startOfDay(time.Now())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]QueueOrderResponse, 0)
	ids := make([]uuid.UUID, 0)
	index := make(map[uuid.UUID]int)
	statuses := make([]order.Status, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			number       int
			customerName string
			status       int
		)
		if err = rows.Scan(&id, &number, &customerName, &status); err != nil {
			return nil, err
		}

		if customerName == "" {
			customerName = fmt.Sprintf("Order #%d", number)
		}

		index[id] = len(board)
		ids = append(ids, id)
		statuses = append(statuses, order.Status(status))
		board = append(board, QueueOrderResponse{
			Number:       number,
			CustomerName: customerName,
			Status:       order.Status(status).String(),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(board) == 0 {
		return board, nil
	}

	if err = h.attachSummaries(ctx, ids, index, board); err != nil {
		return nil, err
	}

	history, err := recentPrepDurations(ctx, h.db)
	if err != nil {
		return nil, err
	}

	// Each waiting order's estimate counts itself and every active order in
	// front of it; ready orders are out of the kitchen and wait zero.
	position := 0
	for i := range board {
		if statuses[i] == order.Ready {
			continue
		}
		position++
		board[i].EstimatedMinutes = h.estimator.Estimate(position, history).EstimatedMinutes
	}

	return board, nil
}

func (h *GetQueueQueryHandler) attachSummaries(
	ctx context.Context,
	ids []uuid.UUID,
	index map[uuid.UUID]int,
	board []QueueOrderResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, name, quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	lines := make(map[uuid.UUID][]string, len(ids))
	for rows.Next() {
		var (
			orderID  uuid.UUID
			name     string
			quantity int
		)
		if err = rows.Scan(&orderID, &name, &quantity); err != nil {
			return err
		}
		lines[orderID] = append(lines[orderID], fmt.Sprintf("%dx %s", quantity, name))
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for id, i := range index {
		board[i].ItemsSummary = summarizeItems(lines[id])
	}

	return nil
}

// summarizeItems renders at most queueSummaryLimit lines, truncating the rest
// to a "+N more" suffix.
func summarizeItems(lines []string) string {
	if len(lines) <= queueSummaryLimit {
		return strings.Join(lines, ", ")
	}

	shown := strings.Join(lines[:queueSummaryLimit], ", ")
	return fmt.Sprintf("%s +%d more", shown, len(lines)-queueSummaryLimit)
}
