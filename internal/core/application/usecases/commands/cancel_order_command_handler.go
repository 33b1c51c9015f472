package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order on the customer's behalf.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
}

// NewCancelOrderCommandHandler creates a handler for customer
// cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	cancelled, err := aggregate.Cancel(h.clock.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, cancelled)
}
