package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels pending orders that were never
// confirmed. All cancellations happen in one transaction; the events are
// published only after the commit succeeds.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	clock      Clock
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order
// sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	clock Clock,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the sweep command.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	cutoff := now.Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	staleOrders, err := orderRepo.GetStalePending(ctx, cutoff)
	if err != nil {
		return err
	}

	events := make([]order.OrderStatusChanged, 0, len(staleOrders))
	for _, aggregate := range staleOrders {
		cancelled, cancelErr := aggregate.Cancel(now)
		if cancelErr != nil {
			return cancelErr
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		events = append(events, cancelled)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range events {
		if err = h.publisher.Publish(ctx, event); err != nil {
			return err
		}
	}

	return nil
}
