package commands_test

import (
	"context"
	"testing"

	"foodtruck/internal/core/application/usecases/commands"
	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/payment"
	"foodtruck/internal/core/ports"
	"foodtruck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReporter struct{ mock.Mock }

func (m *MockReporter) ShiftClosed(ctx context.Context, summary ports.ShiftSummary) {
	m.Called(ctx, summary)
}
func (m *MockReporter) DayRolled(ctx context.Context, summary ports.DaySummary) {
	m.Called(ctx, summary)
}

func TestCloseShiftCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	onDuty := activeShift(t) // $100.00 starting cash
	require.NoError(t, onDuty.RecordPayment(
		kernel.NewMoneyFromCents(1142), kernel.NewMoneyFromCents(0), payment.Cash,
	))
	cmd, _ := commands.NewCloseShiftCommand(kernel.NewMoneyFromCents(11142), "")

	repo := new(MockShiftRepository)
	uow := new(MockShiftUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(repo).Once(),
		repo.On("GetActiveForUpdate", ctx).Return(onDuty, nil).Once(),
		repo.On("Update", mock.Anything, onDuty).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	reporter := new(MockReporter)
	reporter.On("ShiftClosed", ctx, mock.AnythingOfType("ports.ShiftSummary")).Once()

	h := commands.NewCloseShiftCommandHandler(factory, reporter)
	closed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, closed.Active())
	assert.Equal(t, int64(11142), closed.ExpectedCash().Cents())

	variance, ok := closed.Variance()
	require.True(t, ok)
	assert.True(t, variance.IsZero())

	reporter.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCloseShiftCommandHandler_Handle_ReportsFinalLedger(t *testing.T) {
	ctx := t.Context()
	onDuty := activeShift(t)
	require.NoError(t, onDuty.RecordPayment(
		kernel.NewMoneyFromCents(870), kernel.NewMoneyFromCents(130), payment.Card,
	))
	cmd, _ := commands.NewCloseShiftCommand(kernel.NewMoneyFromCents(10000), "clean drawer")

	repo := new(MockShiftRepository)
	uow := new(MockShiftUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShiftRepository").Return(repo).Once()
	repo.On("GetActiveForUpdate", ctx).Return(onDuty, nil).Once()
	repo.On("Update", mock.Anything, onDuty).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	var reported ports.ShiftSummary
	reporter := new(MockReporter)
	reporter.On("ShiftClosed", ctx, mock.AnythingOfType("ports.ShiftSummary")).
		Run(func(args mock.Arguments) {
			reported = args.Get(1).(ports.ShiftSummary)
		}).Once()

	h := commands.NewCloseShiftCommandHandler(factory, reporter)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, onDuty.ID(), reported.ShiftID)
	assert.Equal(t, "Jordan", reported.StaffName)
	assert.Equal(t, 1, reported.TotalOrders)
	assert.Equal(t, int64(870), reported.TotalRevenue.Cents())
	assert.Equal(t, int64(130), reported.TotalTips.Cents())
	assert.Equal(t, int64(870), reported.CardSales.Cents())
	assert.True(t, reported.CashSales.IsZero())
	assert.Equal(t, int64(10000), reported.ExpectedCash.Cents())
	assert.True(t, reported.Variance.IsZero())
	assert.False(t, reported.EndedAt.IsZero())
}

func TestCloseShiftCommandHandler_Handle_NoActiveShift(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCloseShiftCommand(kernel.NewMoneyFromCents(10000), "")

	repo := new(MockShiftRepository)
	uow := new(MockShiftUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShiftRepository").Return(repo).Once(),
		repo.On("GetActiveForUpdate", ctx).
			Return(nil, errs.NewObjectNotFoundError("active shift", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShiftUoWFactory)
	factory.On("Create").Return(uow).Once()

	reporter := new(MockReporter)
	h := commands.NewCloseShiftCommandHandler(factory, reporter)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNoActiveShift)
	reporter.AssertNotCalled(t, "ShiftClosed", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
