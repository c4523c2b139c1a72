package commands_test

import (
	"testing"

	"foodtruck/internal/core/application/usecases/commands"
	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartShiftCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewStartShiftCommand("Jordan", kernel.NewMoneyFromCents(10000))
	require.NoError(t, err)
	assert.Equal(t, "Jordan", cmd.StaffName())
	assert.Equal(t, int64(10000), cmd.StartingCash().Cents())
}

func TestNewStartShiftCommand_EmptyStaffName(t *testing.T) {
	_, err := commands.NewStartShiftCommand("  ", kernel.NewMoneyFromCents(10000))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewStartShiftCommand_NegativeStartingCash(t *testing.T) {
	_, err := commands.NewStartShiftCommand("Jordan", kernel.NewMoneyFromCents(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStartShiftCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.StartShiftCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrStartShiftCommandIsNotConstructed)
}
