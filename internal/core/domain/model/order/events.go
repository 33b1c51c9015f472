package order

import (
	"foodorder/internal/core/domain/model/kernel"
)

// DomainEvent is an immutable record of something that happened to the
// aggregate. Mutating operations return events as plain values; nothing is
// accumulated on the entity, so the caller decides when and whether to
// publish them.
type DomainEvent interface {
	// EventName returns the stable name of the event used as a routing key
	// by publishers.
	EventName() string
}

// OrderCreated is emitted once when an order is placed.
type OrderCreated struct {
	OrderID      kernel.UUID
	OrderNumber  string
	UserID       kernel.UUID
	RestaurantID kernel.UUID
}

// EventName implements DomainEvent.
func (OrderCreated) EventName() string {
	return "order.created"
}

// OrderStatusChanged is emitted on every successful status transition,
// including cancellation.
type OrderStatusChanged struct {
	OrderID      kernel.UUID
	UserID       kernel.UUID
	RestaurantID kernel.UUID
	OldStatus    Status
	NewStatus    Status
}

// EventName implements DomainEvent.
func (OrderStatusChanged) EventName() string {
	return "order.status_changed"
}
