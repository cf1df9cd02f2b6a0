package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// DispatchFacade exposes the subset of application functionality required by the dispatcher.
type DispatchFacade interface {
	OrdersAwaitingShipment(ctx context.Context, limit int) ([]model.Order, error)
	DispatchShipment(ctx context.Context, orderID int64) (*model.Shipment, bool, error)
}

// ShipmentDispatcher sweeps paid orders without a shipment and creates their
// preparing shipment concurrently. Creation is idempotent, so overlapping
// sweeps never produce duplicates.
type ShipmentDispatcher struct {
	facade        DispatchFacade
	sweepInterval time.Duration
	batchSize     int
	workers       int
	logger        *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewShipmentDispatcher constructs the dispatcher worker pool.
func NewShipmentDispatcher(facade DispatchFacade, sweepInterval time.Duration, batchSize, workers int, logger *slog.Logger) *ShipmentDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ShipmentDispatcher{
		facade:        facade,
		sweepInterval: sweepInterval,
		batchSize:     batchSize,
		workers:       workers,
		logger:        logger,
		jobs:          make(chan model.Order, batchSize*workers),
	}
}

// Start launches background dispatching.
func (d *ShipmentDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.sweep(runCtx)
}

// Stop waits for all workers to finish.
func (d *ShipmentDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *ShipmentDispatcher) sweep(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndQueue(ctx)
		}
	}
}

func (d *ShipmentDispatcher) fetchAndQueue(ctx context.Context) {
	orders, err := d.facade.OrdersAwaitingShipment(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch orders awaiting shipment failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- order:
		}
	}
}

func (d *ShipmentDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handleOrder(ctx, order)
		}
	}
}

func (d *ShipmentDispatcher) handleOrder(ctx context.Context, order model.Order) {
	shipment, created, err := d.facade.DispatchShipment(ctx, order.ID)
	if err != nil {
		d.logger.Error("dispatch shipment failed", slog.Int64("order_id", order.ID), slog.String("error", err.Error()))
		return
	}
	if created {
		d.logger.Info("shipment dispatched",
			slog.Int64("order_id", order.ID),
			slog.Int64("shipment_id", shipment.ID),
		)
	}
}
