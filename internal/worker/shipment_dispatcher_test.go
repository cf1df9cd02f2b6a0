package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	testhelpers "github.com/hoseki-store/joyeria/internal/test"
)

func TestNewShipmentDispatcherDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	d := NewShipmentDispatcher(&testhelpers.DispatchFacadeStub{}, time.Second, 0, 0, logger)
	if d.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", d.batchSize)
	}
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
}

func TestShipmentDispatcherCreatesShipments(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.DispatchFacadeStub{Batches: [][]model.Order{{{ID: 1, Status: model.OrderStatusPaid}}}}
	d := NewShipmentDispatcher(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		dispatched := len(facade.Dispatched) > 0
		facade.Unlock()
		if dispatched {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for shipment dispatch")
		case <-time.After(10 * time.Millisecond):
		}
	}

	d.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Dispatched[0].OrderID != 1 {
		t.Fatalf("expected dispatch for order 1, got %+v", facade.Dispatched[0])
	}
}

func TestShipmentDispatcherSurvivesErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.DispatchFacadeStub{
		Batches: [][]model.Order{{{ID: 1}}, {{ID: 2}}},
		DispatchFn: func(ctx context.Context, orderID int64) (*model.Shipment, bool, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return nil, false, errors.New("database unavailable")
			}
			return &model.Shipment{ID: 9, OrderID: orderID, Status: model.ShipmentStatusPreparing}, true, nil
		},
	}

	d := NewShipmentDispatcher(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&attempts) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry after failure")
		case <-time.After(10 * time.Millisecond):
		}
	}
	d.Stop()
}

func TestShipmentDispatcherStopIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	d := NewShipmentDispatcher(&testhelpers.DispatchFacadeStub{}, 10*time.Millisecond, 1, 2, logger)

	d.Start(context.Background())
	d.Stop()
	d.Stop()
}
