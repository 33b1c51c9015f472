package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderWithItem(t *testing.T) (*order.Order, *order.OrderItem) {
	t.Helper()
	aggregate := pendingOrder(t)
	item, err := order.NewOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), "Lemonade", usd(t, "3.00"), 1, "")
	require.NoError(t, err)
	require.NoError(t, aggregate.AddItem(item))
	return aggregate, item
}

func TestRemoveOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder, item := orderWithItem(t)
	cmd, err := commands.NewRemoveOrderItemCommand(testOrder.ID(), item.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	updated := repo.Calls[1].Arguments[1].(*order.Order)
	assert.Empty(t, updated.Items())
	assert.True(t, updated.TotalAmount().IsZero())
}

func TestRemoveOrderItemCommandHandler_Handle_MissingItemIsNoOp(t *testing.T) {
	ctx := t.Context()
	testOrder, _ := orderWithItem(t)
	cmd, err := commands.NewRemoveOrderItemCommand(testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	updated := repo.Calls[1].Arguments[1].(*order.Order)
	assert.Len(t, updated.Items(), 1)
}

func TestRemoveOrderItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RemoveOrderItemCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewRemoveOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRemoveOrderItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRemoveOrderItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRemoveOrderItemCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
