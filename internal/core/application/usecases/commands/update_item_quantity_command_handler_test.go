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

func TestUpdateItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder, item := orderWithItem(t)
	cmd, err := commands.NewUpdateItemQuantityCommand(testOrder.ID(), item.ID(), 4)
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

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	updated := repo.Calls[1].Arguments[1].(*order.Order)
	require.Len(t, updated.Items(), 1)
	assert.Equal(t, 4, updated.Items()[0].Quantity())
	assert.True(t, updated.TotalAmount().IsEqual(usd(t, "12.00")))
}

func TestUpdateItemQuantityCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateItemQuantityCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateItemQuantityCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateItemQuantityCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	testOrder, _ := orderWithItem(t)
	cmd, err := commands.NewUpdateItemQuantityCommand(testOrder.ID(), kernel.NewUUID(), 2)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateItemQuantityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update")
}

func TestNewUpdateItemQuantityCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewUpdateItemQuantityCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
