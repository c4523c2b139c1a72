package commands

import (
	"errors"
	"strings"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"
	"foodtruck/internal/pkg/guard"
)

var (
	ErrStartShiftCommandIsNotConstructed = errors.New(
		"StartShiftCommand must be created via NewStartShiftCommand constructor",
	)
)

// StartShiftCommand represents a request to open the cash drawer for a new
// working shift with a counted starting float.
type StartShiftCommand struct { //nolint:recvcheck //using for validation
	staffName    string
	startingCash kernel.Money

	guard guard.ConstructorGuard
}

// NewStartShiftCommand creates a command to start a shift.
// Staff name is required; starting cash must not be negative.
func NewStartShiftCommand(staffName string, startingCash kernel.Money) (StartShiftCommand, error) {
	cmd := StartShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffName(staffName),
		cmd.setStartingCash(startingCash),
	); err != nil {
		return StartShiftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartShiftCommand) Validate() error {
	return c.guard.Validate(ErrStartShiftCommandIsNotConstructed)
}

// StaffName returns the name of the staff member opening the shift.
func (c StartShiftCommand) StaffName() string {
	return c.staffName
}

// StartingCash returns the counted drawer float at shift start.
func (c StartShiftCommand) StartingCash() kernel.Money {
	return c.startingCash
}

func (c *StartShiftCommand) setStaffName(staffName string) error {
	if strings.TrimSpace(staffName) == "" {
		return errs.NewValueIsRequiredError("staff_name")
	}

	c.staffName = staffName
	return nil
}

func (c *StartShiftCommand) setStartingCash(startingCash kernel.Money) error {
	if startingCash.IsNegative() {
		return errs.NewValueIsInvalidError("starting_cash")
	}

	c.startingCash = startingCash
	return nil
}
