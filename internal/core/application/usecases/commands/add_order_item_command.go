package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
)

// AddOrderItemCommand represents a request to add a line item to an order.
// The menu item name and unit price are snapshotted into the order at
// handling time; later menu changes do not affect the placed order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	menuItemID   kernel.UUID
	menuItemName string
	unitPrice    kernel.Money
	quantity     int
	specialNotes string

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add a line item.
// Validates the identifiers, snapshot fields, and that quantity is at
// least 1.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	menuItemID kernel.UUID,
	menuItemName string,
	unitPrice kernel.Money,
	quantity int,
	specialNotes string,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		specialNotes: specialNotes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMenuItemID(menuItemID),
		cmd.setMenuItemName(menuItemName),
		cmd.setUnitPrice(unitPrice),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MenuItemID returns the referenced menu item's identifier.
func (c AddOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// MenuItemName returns the menu item name to snapshot.
func (c AddOrderItemCommand) MenuItemName() string {
	return c.menuItemName
}

// UnitPrice returns the unit price to snapshot.
func (c AddOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// Quantity returns the ordered quantity.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// SpecialNotes returns the optional preparation notes.
func (c AddOrderItemCommand) SpecialNotes() string {
	return c.specialNotes
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *AddOrderItemCommand) setMenuItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menuItemName")
	}
	c.menuItemName = name
	return nil
}

func (c *AddOrderItemCommand) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.unitPrice = price
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	c.quantity = quantity
	return nil
}
