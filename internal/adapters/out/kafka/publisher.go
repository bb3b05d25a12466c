// Package kafka publishes order events to Apache Kafka with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ordertracker/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventTypeOrderStatusChanged is the event_type of status change messages.
const EventTypeOrderStatusChanged = "OrderStatusChanged"

// DefaultWriteTimeout bounds a single publish.
const DefaultWriteTimeout = 5 * time.Second

// OrderStatusChangedMessage is the JSON value written to the topic.
type OrderStatusChangedMessage struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher writes order events synchronously. Messages are keyed
// by order id, so all events of one order land on the same partition in
// commit order.
type OrderEventPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
	newEventID   func() string
}

// NewOrderEventPublisher creates a publisher for topic on the given brokers.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return newOrderEventPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func newOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer:       writer,
		writeTimeout: DefaultWriteTimeout,
		newEventID:   func() string { return uuid.NewString() },
	}
}

// PublishStatusChanged writes one OrderStatusChanged message and waits for
// the brokers to acknowledge it.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	value, err := json.Marshal(OrderStatusChangedMessage{
		EventID:    p.newEventID(),
		EventType:  EventTypeOrderStatusChanged,
		OccurredAt: event.OccurredAt,
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID,
		OldStatus:  event.OldStatus.String(),
		NewStatus:  event.NewStatus.String(),
	})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", EventTypeOrderStatusChanged, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeOrderStatusChanged)},
		},
	})
	if err != nil {
		return fmt.Errorf("write %s event: %w", EventTypeOrderStatusChanged, err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

// PublishStatusChanged does nothing.
func (NoopPublisher) PublishStatusChanged(context.Context, ports.OrderStatusChanged) error {
	return nil
}

// Close does nothing.
func (NoopPublisher) Close() error {
	return nil
}
