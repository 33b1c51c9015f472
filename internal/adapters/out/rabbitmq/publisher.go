// Package rabbitmq publishes domain events to a RabbitMQ topic exchange.
// Events are serialized as JSON envelopes and routed by their event name,
// so consumers can bind selectively (for example "order.status_changed").
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// EventPublisher implements ports.EventPublisher on top of a RabbitMQ
// topic exchange.
type EventPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	logger   *slog.Logger
}

// NewEventPublisher connects to RabbitMQ and declares the durable topic
// exchange used for order events. The caller owns the returned publisher
// and must Close it on shutdown.
func NewEventPublisher(url, exchange string, logger *slog.Logger) (*EventPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &EventPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Publish serializes the event and publishes it with its event name as the
// routing key.
func (p *EventPublisher) Publish(ctx context.Context, event order.DomainEvent) error {
	envelope, err := envelopeFromDomain(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.EventName(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		event.EventName(), // routing key
		false,             // mandatory
		false,             // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.logger.Error("failed to publish event",
			"exchange", p.exchange,
			"routing_key", event.EventName(),
			"error", err,
		)
		return fmt.Errorf("failed to publish event %s: %w", event.EventName(), err)
	}

	p.logger.Debug("event published",
		"exchange", p.exchange,
		"routing_key", event.EventName(),
	)

	return nil
}

// Close releases the channel and the connection.
func (p *EventPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// eventEnvelope is the wire format shared by all order events. Fields not
// applicable to an event type are omitted.
type eventEnvelope struct {
	EventName    string `json:"event_name"`
	OrderID      string `json:"order_id"`
	OrderNumber  string `json:"order_number,omitempty"`
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id"`
	OldStatus    string `json:"old_status,omitempty"`
	NewStatus    string `json:"new_status,omitempty"`
}

func envelopeFromDomain(event order.DomainEvent) (eventEnvelope, error) {
	switch e := event.(type) {
	case order.OrderCreated:
		return eventEnvelope{
			EventName:    e.EventName(),
			OrderID:      e.OrderID.String(),
			OrderNumber:  e.OrderNumber,
			UserID:       e.UserID.String(),
			RestaurantID: e.RestaurantID.String(),
		}, nil
	case order.OrderStatusChanged:
		return eventEnvelope{
			EventName:    e.EventName(),
			OrderID:      e.OrderID.String(),
			UserID:       e.UserID.String(),
			RestaurantID: e.RestaurantID.String(),
			OldStatus:    e.OldStatus.String(),
			NewStatus:    e.NewStatus.String(),
		}, nil
	default:
		return eventEnvelope{}, fmt.Errorf("unsupported event type %T", event)
	}
}
