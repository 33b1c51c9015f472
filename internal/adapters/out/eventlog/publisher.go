// Package eventlog provides a logging event publisher, used when no
// message broker is configured. Events are written to the structured log
// instead of being delivered anywhere.
package eventlog

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
)

// Publisher implements ports.EventPublisher by logging each event.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a logging event publisher.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Publish logs the event and always succeeds.
func (p *Publisher) Publish(_ context.Context, event order.DomainEvent) error {
	switch e := event.(type) {
	case order.OrderCreated:
		p.logger.Info("domain event",
			"event_name", e.EventName(),
			"order_id", e.OrderID.String(),
			"order_number", e.OrderNumber,
		)
	case order.OrderStatusChanged:
		p.logger.Info("domain event",
			"event_name", e.EventName(),
			"order_id", e.OrderID.String(),
			"old_status", e.OldStatus.String(),
			"new_status", e.NewStatus.String(),
		)
	default:
		p.logger.Info("domain event", "event_name", event.EventName())
	}
	return nil
}
