package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderPlaced is published after a successful order placement.
type OrderPlaced struct {
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	PlacedAt  time.Time `json:"placed_at"`
	LineCount int       `json:"line_count"`
}

// ShipmentDispatched is published when the dispatcher creates a shipment.
type ShipmentDispatched struct {
	ShipmentID   int64     `json:"shipment_id"`
	OrderID      int64     `json:"order_id"`
	Status       string    `json:"status"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes store events to Kafka. With no brokers configured it is
// a no-op, so local setups run without a broker.
type Producer struct {
	writer kafkaWriter
	logger *slog.Logger
}

// NewProducer builds a Producer. An empty broker list disables publishing.
func NewProducer(brokers []string, topic string, logger *slog.Logger) *Producer {
	p := &Producer{logger: logger}
	if len(brokers) == 0 {
		return p
	}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return p
}

// Enabled reports whether events actually reach a broker.
func (p *Producer) Enabled() bool {
	return p.writer != nil
}

// Publish sends a JSON encoded event keyed by the given key. Publishing is
// best effort: failures are logged and never fail the calling operation.
func (p *Producer) Publish(ctx context.Context, key string, payload any) {
	if p.writer == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("encode event", slog.String("key", key), slog.String("error", err.Error()))
		return
	}

	msg := kafka.Message{Key: []byte(key), Value: data, Time: time.Now().UTC()}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Close flushes and shuts down the underlying writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
