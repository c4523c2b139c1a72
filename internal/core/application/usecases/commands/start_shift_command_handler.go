package commands

import (
	"context"
	"errors"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/shift"
	"foodtruck/internal/pkg/errs"
)

// StartShiftCommandHandler opens a new shift. At most one shift is active at
// a time: the handler checks for an existing active row under a lock, and the
// store's partial unique index backstops the check against a racing start.
type StartShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
}

// NewStartShiftCommandHandler creates a handler for shift opening.
func NewStartShiftCommandHandler(uowFactory ShiftUoWFactory) StartShiftCommandHandler {
	return StartShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command and returns the newly active shift.
// Fails with ShiftAlreadyActive when an open shift exists.
func (h *StartShiftCommandHandler) Handle(ctx context.Context, cmd StartShiftCommand) (*shift.Shift, error) {
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
	if err == nil {
		return nil, errs.NewShiftAlreadyActiveError(active.StaffName())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newShift, err := shift.NewShift(kernel.NewUUID(), cmd.StaffName(), cmd.StartingCash(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = shiftRepo.Add(ctx, newShift); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newShift, nil
}
