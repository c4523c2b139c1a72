package http

import (
	"time"

	"foodtruck/internal/core/application/usecases/queries"
	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/core/domain/model/payment"
	"foodtruck/internal/core/domain/model/shift"
)

// Error is the JSON body returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLine is one cart line in an order creation request.
type OrderLine struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// NewOrder is the request body for POST /orders.
type NewOrder struct {
	CustomerName string      `json:"customer_name"`
	Notes        string      `json:"notes"`
	Items        []OrderLine `json:"items"`
}

// StatusChange is the request body for PATCH /orders/{id}/status.
type StatusChange struct {
	Status string `json:"status"`
}

// NewPayment is the request body for POST /payments. Tendered is only
// meaningful for cash; nil means exact cash.
type NewPayment struct {
	OrderID  string        `json:"order_id"`
	Amount   kernel.Money  `json:"amount"`
	Method   string        `json:"method"`
	Tip      kernel.Money  `json:"tip"`
	Tendered *kernel.Money `json:"cash_tendered"`
}

// NewShift is the request body for POST /shifts/start.
type NewShift struct {
	StaffName    string       `json:"staff_name"`
	StartingCash kernel.Money `json:"starting_cash"`
}

// ShiftClose is the request body for POST /shifts/close.
type ShiftClose struct {
	EndingCash kernel.Money `json:"ending_cash"`
	Notes      string       `json:"notes"`
}

// OrderItem is one order line in an order response.
type OrderItem struct {
	MenuItemID string       `json:"menu_item_id"`
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	UnitPrice  kernel.Money `json:"unit_price"`
	Subtotal   kernel.Money `json:"subtotal"`
}

// Order is the full order representation for the POS surface.
type Order struct {
	ID           string       `json:"id"`
	Number       int          `json:"number"`
	CustomerName string       `json:"customer_name"`
	Status       string       `json:"status"`
	Items        []OrderItem  `json:"items"`
	Subtotal     kernel.Money `json:"subtotal"`
	Tax          kernel.Money `json:"tax"`
	Total        kernel.Money `json:"total"`
	Paid         bool         `json:"paid"`
	Notes        string       `json:"notes"`
	CreatedAt    time.Time    `json:"created_at"`
	ReadyAt      *time.Time   `json:"ready_at"`
	CompletedAt  *time.Time   `json:"completed_at"`
}

// KitchenItem is one line on a kitchen ticket.
type KitchenItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// KitchenOrder is one ticket on the kitchen display.
type KitchenOrder struct {
	ID             string        `json:"id"`
	Number         int           `json:"number"`
	CustomerName   string        `json:"customer_name"`
	Status         string        `json:"status"`
	ElapsedSeconds int           `json:"elapsed_seconds"`
	Items          []KitchenItem `json:"items"`
	Notes          string        `json:"notes"`
}

// QueueEntry is one row on the customer-facing queue display.
type QueueEntry struct {
	Number           int    `json:"number"`
	CustomerName     string `json:"customer_name"`
	Status           string `json:"status"`
	ItemsSummary     string `json:"items_summary"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// WaitEstimate is the walk-up wait quote.
type WaitEstimate struct {
	OrdersAhead      int    `json:"orders_ahead"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	BusyLevel        string `json:"busy_level"`
}

// Payment is the payment representation returned after processing.
type Payment struct {
	ID        string        `json:"id"`
	OrderID   string        `json:"order_id"`
	Amount    kernel.Money  `json:"amount"`
	Method    string        `json:"method"`
	Tip       kernel.Money  `json:"tip"`
	Tendered  *kernel.Money `json:"cash_tendered"`
	Change    kernel.Money  `json:"change"`
	Reference string        `json:"reference"`
	OffShift  bool          `json:"off_shift"`
	CreatedAt time.Time     `json:"created_at"`
}

// Shift is the cash-drawer shift representation.
type Shift struct {
	ID           string        `json:"id"`
	StaffName    string        `json:"staff_name"`
	StartedAt    time.Time     `json:"started_at"`
	EndedAt      *time.Time    `json:"ended_at"`
	Active       bool          `json:"active"`
	StartingCash kernel.Money  `json:"starting_cash"`
	EndingCash   *kernel.Money `json:"ending_cash"`
	TotalOrders  int           `json:"total_orders"`
	TotalRevenue kernel.Money  `json:"total_revenue"`
	TotalTips    kernel.Money  `json:"total_tips"`
	CashSales    kernel.Money  `json:"cash_sales"`
	CardSales    kernel.Money  `json:"card_sales"`
	ExpectedCash kernel.Money  `json:"expected_cash"`
	Variance     *kernel.Money `json:"variance"`
	Notes        string        `json:"notes"`
}

func orderFromAggregate(aggregate *order.Order) Order {
	items := make([]OrderItem, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = OrderItem{
			MenuItemID: item.MenuItemID().String(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Subtotal:   item.Subtotal(),
		}
	}

	return Order{
		ID:           aggregate.ID().String(),
		Number:       aggregate.Number(),
		CustomerName: aggregate.CustomerName(),
		Status:       aggregate.Status().String(),
		Items:        items,
		Subtotal:     aggregate.Subtotal(),
		Tax:          aggregate.Tax(),
		Total:        aggregate.Total(),
		Paid:         aggregate.Paid(),
		Notes:        aggregate.Notes(),
		CreatedAt:    aggregate.CreatedAt(),
		ReadyAt:      aggregate.ReadyAt(),
		CompletedAt:  aggregate.CompletedAt(),
	}
}

func orderFromQuery(response queries.OrderResponse) Order {
	items := make([]OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItem{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
		}
	}

	return Order{
		ID:           response.ID.String(),
		Number:       response.Number,
		CustomerName: response.CustomerName,
		Status:       response.Status,
		Items:        items,
		Subtotal:     response.Subtotal,
		Tax:          response.Tax,
		Total:        response.Total,
		Paid:         response.Paid,
		Notes:        response.Notes,
		CreatedAt:    response.CreatedAt,
		ReadyAt:      response.ReadyAt,
		CompletedAt:  response.CompletedAt,
	}
}

func kitchenOrderFromQuery(response queries.KitchenOrderResponse) KitchenOrder {
	items := make([]KitchenItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = KitchenItem{Name: item.Name, Quantity: item.Quantity}
	}

	return KitchenOrder{
		ID:             response.ID.String(),
		Number:         response.Number,
		CustomerName:   response.CustomerName,
		Status:         response.Status,
		ElapsedSeconds: response.ElapsedSeconds,
		Items:          items,
		Notes:          response.Notes,
	}
}

func queueEntryFromQuery(response queries.QueueOrderResponse) QueueEntry {
	return QueueEntry{
		Number:           response.Number,
		CustomerName:     response.CustomerName,
		Status:           response.Status,
		ItemsSummary:     response.ItemsSummary,
		EstimatedMinutes: response.EstimatedMinutes,
	}
}

func paymentFromAggregate(aggregate *payment.Payment) Payment {
	return Payment{
		ID:        aggregate.ID().String(),
		OrderID:   aggregate.OrderID().String(),
		Amount:    aggregate.Amount(),
		Method:    aggregate.Method().String(),
		Tip:       aggregate.Tip(),
		Tendered:  aggregate.Tendered(),
		Change:    aggregate.Change(),
		Reference: aggregate.Reference(),
		OffShift:  aggregate.OffShift(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func shiftFromAggregate(aggregate *shift.Shift) Shift {
	response := Shift{
		ID:           aggregate.ID().String(),
		StaffName:    aggregate.StaffName(),
		StartedAt:    aggregate.StartedAt(),
		EndedAt:      aggregate.EndedAt(),
		Active:       aggregate.Active(),
		StartingCash: aggregate.StartingCash(),
		EndingCash:   aggregate.EndingCash(),
		TotalOrders:  aggregate.TotalOrders(),
		TotalRevenue: aggregate.TotalRevenue(),
		TotalTips:    aggregate.TotalTips(),
		CashSales:    aggregate.CashSales(),
		CardSales:    aggregate.CardSales(),
		ExpectedCash: aggregate.ExpectedCash(),
		Notes:        aggregate.Notes(),
	}
	if variance, ok := aggregate.Variance(); ok {
		response.Variance = &variance
	}
	return response
}

func shiftFromQuery(response queries.ShiftResponse) Shift {
	return Shift{
		ID:           response.ID.String(),
		StaffName:    response.StaffName,
		StartedAt:    response.StartedAt,
		EndedAt:      response.EndedAt,
		Active:       response.Active,
		StartingCash: response.StartingCash,
		EndingCash:   response.EndingCash,
		TotalOrders:  response.TotalOrders,
		TotalRevenue: response.TotalRevenue,
		TotalTips:    response.TotalTips,
		CashSales:    response.CashSales,
		CardSales:    response.CardSales,
		ExpectedCash: response.ExpectedCash,
		Variance:     response.Variance,
		Notes:        response.Notes,
	}
}
