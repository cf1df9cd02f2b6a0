package events

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

type stubWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (s *stubWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.messages = append(s.messages, msgs...)
	return nil
}

func (s *stubWriter) Close() error {
	s.closed = true
	return nil
}

func TestProducerDisabledIsNoop(t *testing.T) {
	p := NewProducer(nil, "joyeria.orders", slog.Default())
	if p.Enabled() {
		t.Fatal("producer without brokers must be disabled")
	}
	p.Publish(context.Background(), "order-1", OrderPlaced{OrderID: 1})
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestProducerPublishes(t *testing.T) {
	writer := &stubWriter{}
	p := &Producer{writer: writer, logger: slog.Default()}

	p.Publish(context.Background(), "order-7", OrderPlaced{
		OrderID:  7,
		UserID:   11,
		Total:    25000,
		Status:   "Pagado",
		PlacedAt: time.Now(),
	})

	if len(writer.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(writer.messages))
	}
	if string(writer.messages[0].Key) != "order-7" {
		t.Fatalf("unexpected key: %s", writer.messages[0].Key)
	}
}

func TestProducerSwallowsWriteErrors(t *testing.T) {
	writer := &stubWriter{writeErr: errors.New("broker down")}
	p := &Producer{writer: writer, logger: slog.Default()}

	// Must not panic or propagate.
	p.Publish(context.Background(), "order-7", OrderPlaced{OrderID: 7})
}

func TestProducerClose(t *testing.T) {
	writer := &stubWriter{}
	p := &Producer{writer: writer, logger: slog.Default()}
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !writer.closed {
		t.Fatal("expected writer closed")
	}
}
