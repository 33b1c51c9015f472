package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Creates the order in Pending status with an empty item list and publishes
// the OrderCreated event after the transaction commits.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and an
// EventPublisher for the creation event.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// The order and its creation event either both happen or neither does:
// the event is published only after a successful commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	initialTotal, err := kernel.NewZeroMoney(cmd.Currency())
	if err != nil {
		return err
	}

	newOrder, created, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.UserID(),
		cmd.RestaurantID(),
		initialTotal,
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, created)
}
