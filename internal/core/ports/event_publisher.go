package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// EventPublisher is the event sink consumed by the application layer.
// Mutating operations return domain events as plain data; command handlers
// decide when to hand them to the publisher — by convention after the
// surrounding transaction commits.
type EventPublisher interface {
	Publish(ctx context.Context, event order.DomainEvent) error
}
