package commands_test

import (
	"testing"

	"foodtruck/internal/core/application/usecases/commands"
	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCloseShiftCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCloseShiftCommand(kernel.NewMoneyFromCents(11142), "drawer counted twice")
	require.NoError(t, err)
	assert.Equal(t, int64(11142), cmd.EndingCash().Cents())
	assert.Equal(t, "drawer counted twice", cmd.Notes())
}

func TestNewCloseShiftCommand_NegativeEndingCash(t *testing.T) {
	_, err := commands.NewCloseShiftCommand(kernel.NewMoneyFromCents(-1), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCloseShiftCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CloseShiftCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCloseShiftCommandIsNotConstructed)
}
