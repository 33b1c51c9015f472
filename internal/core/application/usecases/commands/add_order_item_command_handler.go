package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler appends a line item to an existing order.
// The aggregate recomputes its total synchronously with the append; the
// handler persists the updated aggregate in one transaction.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding line items.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command.
// Loads the order, snapshots the menu item into a new line item, and
// persists the recomputed aggregate.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := order.NewOrderItem(
		kernel.NewUUID(),
		cmd.MenuItemID(),
		cmd.MenuItemName(),
		cmd.UnitPrice(),
		cmd.Quantity(),
		cmd.SpecialNotes(),
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
