package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrUpdateItemQuantityCommandIsNotConstructed = errors.New(
		"UpdateItemQuantityCommand must be created via NewUpdateItemQuantityCommand constructor",
	)
)

// UpdateItemQuantityCommand represents a request to change the quantity of
// a line item already on an order. Unlike removal, targeting a missing
// item is an error here because the caller named a specific item it
// expects to exist.
type UpdateItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	itemID      kernel.UUID
	newQuantity int

	guard guard.ConstructorGuard
}

// NewUpdateItemQuantityCommand creates a command to change a line item's
// quantity. The new quantity must be at least 1.
func NewUpdateItemQuantityCommand(orderID, itemID kernel.UUID, newQuantity int) (UpdateItemQuantityCommand, error) {
	cmd := UpdateItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setNewQuantity(newQuantity),
	); err != nil {
		return UpdateItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemQuantityCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the line item's identifier.
func (c UpdateItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewQuantity returns the requested quantity.
func (c UpdateItemQuantityCommand) NewQuantity() int {
	return c.newQuantity
}

func (c *UpdateItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateItemQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateItemQuantityCommand) setNewQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"newQuantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	c.newQuantity = quantity
	return nil
}
