package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order for a
// customer at a restaurant. The currency establishes the order's monetary
// anchor; every item added later must match it.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	orderNumber         string
	userID              kernel.UUID
	restaurantID        kernel.UUID
	currency            string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the order number, and the currency code.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	currency string,
	specialInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setCurrency(currency),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-facing order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// UserID returns the ordering customer's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Currency returns the currency code the order is placed in.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

// SpecialInstructions returns the optional order-level notes.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	// Constructing zero money validates the currency code.
	if _, err := kernel.NewZeroMoney(currency); err != nil {
		return err
	}
	c.currency = currency
	return nil
}
