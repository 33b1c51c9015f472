// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and repositories, reading
// directly from the database and returning plain response structs shaped
// for presentation.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its complete line item list.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s %s\n", response.OrderNumber, response.TotalAmount, response.Currency)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents a complete order for presentation.
// Monetary amounts are pre-formatted to two decimal places.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	OrderNumber         string
	UserID              kernel.UUID
	RestaurantID        kernel.UUID
	Status              string
	TotalAmount         string
	Currency            string
	SpecialInstructions string
	EstimatedPickupTime *time.Time
	ActualPickupTime    *time.Time
	CreatedAt           time.Time
	Items               []GetOrderQueryItemResponse
}

// GetOrderQueryItemResponse represents one line item of the order.
type GetOrderQueryItemResponse struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	MenuItemName string
	UnitPrice    string
	Quantity     int
	Subtotal     string
	SpecialNotes string
}
