// Package http exposes the POS, kitchen and queue surfaces over REST.
// Handlers translate JSON requests into commands and queries and map domain
// errors onto HTTP status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"foodtruck/internal/core/application/usecases/commands"
	"foodtruck/internal/core/application/usecases/queries"
	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/core/domain/model/payment"
	"foodtruck/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	bumpOrderHandler         commands.BumpOrderCommandHandler
	processPaymentHandler    commands.ProcessPaymentCommandHandler
	startShiftHandler        commands.StartShiftCommandHandler
	closeShiftHandler        commands.CloseShiftCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler
	getQueueHandler         queries.GetQueueQueryHandler
	getWaitEstimateHandler  queries.GetWaitEstimateQueryHandler
	getActiveShiftHandler   queries.GetActiveShiftQueryHandler
	getShiftsHandler        queries.GetShiftsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	bumpOrderHandler commands.BumpOrderCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	startShiftHandler commands.StartShiftCommandHandler,
	closeShiftHandler commands.CloseShiftCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler,
	getQueueHandler queries.GetQueueQueryHandler,
	getWaitEstimateHandler queries.GetWaitEstimateQueryHandler,
	getActiveShiftHandler queries.GetActiveShiftQueryHandler,
	getShiftsHandler queries.GetShiftsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		bumpOrderHandler:         bumpOrderHandler,
		processPaymentHandler:    processPaymentHandler,
		startShiftHandler:        startShiftHandler,
		closeShiftHandler:        closeShiftHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getKitchenOrdersHandler:  getKitchenOrdersHandler,
		getQueueHandler:          getQueueHandler,
		getWaitEstimateHandler:   getWaitEstimateHandler,
		getActiveShiftHandler:    getActiveShiftHandler,
		getShiftsHandler:         getShiftsHandler,
	}
}

// RegisterRoutes attaches every handler to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/queue", s.GetQueue)
	e.GET("/orders/wait-estimate", s.GetWaitEstimate)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	e.GET("/kitchen/orders", s.GetKitchenOrders)
	e.POST("/kitchen/bump/:id", s.BumpOrder)

	e.POST("/payments", s.ProcessPayment)

	e.POST("/shifts/start", s.StartShift)
	e.POST("/shifts/close", s.CloseShift)
	e.GET("/shifts/active", s.GetActiveShift)
	e.GET("/shifts", s.GetShifts)
}

// CreateOrder handles POST /orders - rings up a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, len(newOrder.Items))
	for i, line := range newOrder.Items {
		menuItemID, err := kernel.UUIDFromString(line.MenuItemID)
		if err != nil {
			return badRequest(ctx, "Invalid menu item id: "+line.MenuItemID)
		}
		lines[i] = commands.OrderLine{MenuItemID: menuItemID, Quantity: line.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.CustomerName, newOrder.Notes, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /orders - lists orders for the POS.
func (s *Server) GetOrders(ctx echo.Context) error {
	todayOnly := false
	if raw := ctx.QueryParam("today_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(ctx, "Invalid today_only value")
		}
		todayOnly = parsed
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(todayOnly))
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromQuery(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/{id} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(found))
}

// UpdateOrderStatus handles PATCH /orders/{id}/status - moves an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var change StatusChange
	if err := ctx.Bind(&change); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(change.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+change.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// BumpOrder handles POST /kitchen/bump/{id} - advances an order one step.
func (s *Server) BumpOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewBumpOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	bumped, err := s.bumpOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(bumped))
}

// GetKitchenOrders handles GET /kitchen/orders - lists today's open tickets.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	tickets, err := s.getKitchenOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetKitchenOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]KitchenOrder, len(tickets))
	for i, ticket := range tickets {
		response[i] = kitchenOrderFromQuery(ticket)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetQueue handles GET /orders/queue - the customer-facing queue display.
func (s *Server) GetQueue(ctx echo.Context) error {
	entries, err := s.getQueueHandler.Handle(ctx.Request().Context(), queries.NewGetQueueQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]QueueEntry, len(entries))
	for i, entry := range entries {
		response[i] = queueEntryFromQuery(entry)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetWaitEstimate handles GET /orders/wait-estimate - quotes the current wait
// for a walk-up customer.
func (s *Server) GetWaitEstimate(ctx echo.Context) error {
	estimate, err := s.getWaitEstimateHandler.Handle(ctx.Request().Context(), queries.NewGetWaitEstimateQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WaitEstimate{
		OrdersAhead:      estimate.OrdersAhead,
		EstimatedMinutes: estimate.EstimatedMinutes,
		BusyLevel:        string(estimate.BusyLevel),
	})
}

// ProcessPayment handles POST /payments - settles an order.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	var newPayment NewPayment
	if err := ctx.Bind(&newPayment); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(newPayment.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	method, err := payment.MethodFromString(newPayment.Method)
	if err != nil {
		return badRequest(ctx, "Unknown payment method: "+newPayment.Method)
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID, newPayment.Amount, method, newPayment.Tip, newPayment.Tendered)
	if err != nil {
		return writeError(ctx, err)
	}

	processed, err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentFromAggregate(processed))
}

// StartShift handles POST /shifts/start - opens the cash drawer.
func (s *Server) StartShift(ctx echo.Context) error {
	var newShift NewShift
	if err := ctx.Bind(&newShift); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartShiftCommand(newShift.StaffName, newShift.StartingCash)
	if err != nil {
		return writeError(ctx, err)
	}

	started, err := s.startShiftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shiftFromAggregate(started))
}

// CloseShift handles POST /shifts/close - counts the drawer and closes the
// active shift.
func (s *Server) CloseShift(ctx echo.Context) error {
	var body ShiftClose
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCloseShiftCommand(body.EndingCash, body.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	closed, err := s.closeShiftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shiftFromAggregate(closed))
}

// GetActiveShift handles GET /shifts/active - the currently open shift.
func (s *Server) GetActiveShift(ctx echo.Context) error {
	active, err := s.getActiveShiftHandler.Handle(ctx.Request().Context(), queries.NewGetActiveShiftQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shiftFromQuery(active))
}

// GetShifts handles GET /shifts - recent shift history, newest first.
func (s *Server) GetShifts(ctx echo.Context) error {
	limit := 20
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit value")
		}
		limit = parsed
	}

	query, err := queries.NewGetShiftsQuery(limit)
	if err != nil {
		return writeError(ctx, err)
	}

	shifts, err := s.getShiftsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Shift, len(shifts))
	for i, sh := range shifts {
		response[i] = shiftFromQuery(sh)
	}
	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// writeError maps domain errors onto HTTP status codes. Validation failures
// are the caller's fault, lifecycle conflicts are state the caller must
// re-read, anything unrecognized is a server fault.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInsufficientCash):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPaymentRequired),
		errors.Is(err, errs.ErrAlreadyPaid),
		errors.Is(err, errs.ErrShiftAlreadyActive),
		errors.Is(err, errs.ErrNoActiveShift):
		code = http.StatusConflict
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
