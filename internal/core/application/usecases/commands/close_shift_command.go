package commands

import (
	"errors"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrCloseShiftCommandIsNotConstructed = errors.New(
		"CloseShiftCommand must be created via NewCloseShiftCommand constructor",
	)
)

// CloseShiftCommand represents a request to close the active shift with a
// physically counted drawer amount, against which the variance is computed.
type CloseShiftCommand struct { //nolint:recvcheck //using for validation
	endingCash kernel.Money
	notes      string

	guard guard.ConstructorGuard
}

// NewCloseShiftCommand creates a command to close the active shift.
// Ending cash must not be negative; notes are optional.
func NewCloseShiftCommand(endingCash kernel.Money, notes string) (CloseShiftCommand, error) {
	cmd := CloseShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEndingCash(endingCash),
		cmd.setNotes(notes),
	); err != nil {
		return CloseShiftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseShiftCommand) Validate() error {
	return c.guard.Validate(ErrCloseShiftCommandIsNotConstructed)
}

// EndingCash returns the counted drawer amount at close.
func (c CloseShiftCommand) EndingCash() kernel.Money {
	return c.endingCash
}

// Notes returns the optional closing notes.
func (c CloseShiftCommand) Notes() string {
	return c.notes
}

func (c *CloseShiftCommand) setEndingCash(endingCash kernel.Money) error {
	if endingCash.IsNegative() {
		return errs.NewValueIsInvalidError("ending_cash")
	}

	c.endingCash = endingCash
	return nil
}

func (c *CloseShiftCommand) setNotes(notes string) error {
	c.notes = notes
	return nil
}
