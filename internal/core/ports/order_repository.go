// Package ports defines the contracts between the domain core and the
// infrastructure adapters: repositories, the unit of work, and the event
// sink. The core never performs I/O itself; these interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the complete aggregate, items included, and
// restore it through the domain's RestoreOrder constructor.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is guarded by the aggregate's version; a lost
	// optimistic-concurrency race surfaces as a version error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// complete with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its human-facing
	// order number.
	GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetAllActive retrieves all orders that are neither Completed nor
	// Cancelled.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetStalePending retrieves Pending orders created before the cutoff.
	// Used by the stale-order sweep to find orders stuck in Pending.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
