package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/payment"
	"foodtruck/internal/pkg/errs"
)

// ProcessPaymentCommandHandler settles an order inside a single transaction
// spanning all three aggregates: the payment record is inserted, the order's
// paid flag flips, and the active shift's running totals increment, or none
// of it happens.
//
// Both the order row and the active shift row are locked, so a payment racing
// a shift close either lands inside the closing totals or sees no active
// shift and is flagged off-shift, and two simultaneous payments never lose a
// ledger increment.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewProcessPaymentCommandHandler creates a handler for payment processing.
func NewProcessPaymentCommandHandler(uowFactory PaymentUoWFactory) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command and returns the recorded payment with
// its computed change.
//
// The stated amount must match the order's authoritative total; a mismatch
// means the terminal's view is stale and the request is rejected before any
// mutation. A payment arriving while no shift is active still succeeds but is
// flagged off-shift and contributes to no ledger.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (*payment.Payment, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkPaid(); err != nil {
		return nil, err
	}

	if !cmd.Amount().IsEqual(aggregate.Total()) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("stated %s does not match order total %s", cmd.Amount(), aggregate.Total()),
		)
	}

	pay, err := payment.NewPayment(
		kernel.NewUUID(), aggregate.ID(), cmd.Amount(), cmd.Method(), cmd.Tip(), cmd.Tendered(), time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.recordOnShift(ctx, uow, pay); err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, pay); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pay, nil
}

// recordOnShift pushes the payment into the active shift's running totals,
// or flags the payment off-shift when none is active. Off-shift payments stay
// off-shift permanently; a later-started shift never absorbs them.
func (h *ProcessPaymentCommandHandler) recordOnShift(ctx context.Context, uow PaymentUoW, pay *payment.Payment) error {
	shiftRepo := uow.ShiftRepository()

	activeShift, err := shiftRepo.GetActiveForUpdate(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			pay.FlagOffShift()
			return nil
		}
		return err
	}

	if err = activeShift.RecordPayment(pay.Amount(), pay.Tip(), pay.Method()); err != nil {
		return err
	}

	return shiftRepo.Update(ctx, activeShift)
}
