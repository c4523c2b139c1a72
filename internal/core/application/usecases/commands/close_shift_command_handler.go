package commands

import (
	"context"
	"errors"
	"time"

	"foodtruck/internal/core/domain/model/shift"
	"foodtruck/internal/core/ports"
	"foodtruck/internal/pkg/errs"
)

// CloseShiftCommandHandler closes the active shift. The active row is locked,
// so a payment racing the close either lands inside the closing totals before
// the lock is taken or finds no active shift afterwards.
//
// Once the close commits, the final ledger is handed to the reporting
// collaborator; reporting failures never affect the already-committed close.
type CloseShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
	reporter   ports.Reporter
}

// NewCloseShiftCommandHandler creates a handler for shift closing.
func NewCloseShiftCommandHandler(uowFactory ShiftUoWFactory, reporter ports.Reporter) CloseShiftCommandHandler {
	return CloseShiftCommandHandler{
		uowFactory: uowFactory,
		reporter:   reporter,
	}
}

// Handle processes the close command and returns the closed shift with its
// computed variance. Fails with NoActiveShift when nothing is open.
func (h *CloseShiftCommandHandler) Handle(ctx context.Context, cmd CloseShiftCommand) (*shift.Shift, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shiftRepo := uow.ShiftRepository()

	active, err := shiftRepo.GetActiveForUpdate(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.ErrNoActiveShift
		}
		return nil, err
	}

	if err = active.Close(cmd.EndingCash(), cmd.Notes(), time.Now()); err != nil {
		return nil, err
	}

	if err = shiftRepo.Update(ctx, active); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.reporter.ShiftClosed(ctx, summarize(active))

	return active, nil
}

func summarize(closed *shift.Shift) ports.ShiftSummary {
	summary := ports.ShiftSummary{
		ShiftID:      closed.ID(),
		StaffName:    closed.StaffName(),
		StartedAt:    closed.StartedAt(),
		TotalOrders:  closed.TotalOrders(),
		TotalRevenue: closed.TotalRevenue(),
		TotalTips:    closed.TotalTips(),
		CashSales:    closed.CashSales(),
		CardSales:    closed.CardSales(),
		ExpectedCash: closed.ExpectedCash(),
	}

	if endedAt := closed.EndedAt(); endedAt != nil {
		summary.EndedAt = *endedAt
	}
	if endingCash := closed.EndingCash(); endingCash != nil {
		summary.EndingCash = *endingCash
	}
	if variance, ok := closed.Variance(); ok {
		summary.Variance = variance
	}

	return summary
}
