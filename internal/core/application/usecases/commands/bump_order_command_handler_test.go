package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodtruck/internal/core/application/usecases/commands"
	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/core/ports"
	"foodtruck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBumpOrderRepository struct{ mock.Mock }

func (m *MockBumpOrderRepository) Add(_ context.Context, _ *order.Order) error { return nil }
func (m *MockBumpOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockBumpOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockBumpOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockBumpOrderRepository) NextOrderNumber(_ context.Context, _ time.Time) (int, error) {
	return 0, errors.New("not implemented in mock")
}

type MockBumpUoW struct{ mock.Mock }

func (m *MockBumpUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBumpUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBumpUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBumpUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockBumpUoWFactory struct{ mock.Mock }

func (m *MockBumpUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func bumpTestHandler(t *testing.T, existing *order.Order) (commands.BumpOrderCommandHandler, *MockBumpUoW) {
	t.Helper()
	repo := new(MockBumpOrderRepository)
	uow := new(MockBumpUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Maybe(),
		uow.On("Commit", mock.Anything).Return(nil).Maybe(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockBumpUoWFactory)
	factory.On("Create").Return(uow).Once()

	return commands.NewBumpOrderCommandHandler(factory), uow
}

func TestBumpOrderCommandHandler_Handle_AdvancesOneStep(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	cmd, _ := commands.NewBumpOrderCommand(existing.ID())

	h, uow := bumpTestHandler(t, existing)
	bumped, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, bumped.Status())
	uow.AssertCalled(t, "Commit", ctx)
}

func TestBumpOrderCommandHandler_Handle_ReadyIsNoOp(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	require.NoError(t, existing.ChangeStatus(order.Preparing, time.Now()))
	require.NoError(t, existing.ChangeStatus(order.Ready, time.Now()))
	cmd, _ := commands.NewBumpOrderCommand(existing.ID())

	h, uow := bumpTestHandler(t, existing)
	bumped, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Ready, bumped.Status())
	uow.AssertCalled(t, "Commit", ctx)
}

func TestBumpOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	require.NoError(t, existing.ChangeStatus(order.Cancelled, time.Now()))
	cmd, _ := commands.NewBumpOrderCommand(existing.ID())

	h, uow := bumpTestHandler(t, existing)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBumpOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewBumpOrderCommand(id)

	repo := new(MockBumpOrderRepository)
	uow := new(MockBumpUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).
			Return(nil, errs.NewObjectNotFoundError("order_id", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBumpUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBumpOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
