package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Confirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("order.OrderStatusChanged")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, handlerClock())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)

	published := publisher.Calls[0].Arguments[1].(order.OrderStatusChanged)
	assert.Equal(t, order.Pending, published.OldStatus)
	assert.Equal(t, order.Confirmed, published.NewStatus)
}

func TestChangeOrderStatusCommandHandler_Handle_ReadyStampsPickupEstimate(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingOrder(t)
	_, err := testOrder.ChangeStatus(order.Confirmed, handlerNow)
	require.NoError(t, err)
	_, err = testOrder.ChangeStatus(order.Preparing, handlerNow)
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Ready)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("order.OrderStatusChanged")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, handlerClock())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	updated := repo.Calls[1].Arguments[1].(*order.Order)
	require.NotNil(t, updated.EstimatedPickupTime())
	assert.Equal(t, handlerNow.Add(order.DefaultPickupSLA), *updated.EstimatedPickupTime())
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)
	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, handlerClock())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Ready)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, handlerClock())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)

	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Pending, transitionErr.From)
	assert.Equal(t, order.Ready, transitionErr.To)

	repo.AssertNotCalled(t, "Update")
	publisher.AssertNotCalled(t, "Publish")
}

func TestChangeOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	testOrder := pendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Confirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, publisher, handlerClock())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	publisher.AssertNotCalled(t, "Publish")
}
