package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StoreMetrics counts the business events worth watching on a dashboard.
type StoreMetrics struct {
	OrdersPlaced        prometheus.Counter
	OrderRejections     *prometheus.CounterVec
	ShipmentsDispatched prometheus.Counter

	registry *prometheus.Registry
}

// NewStoreMetrics registers the store counters on a fresh registry.
func NewStoreMetrics() *StoreMetrics {
	registry := prometheus.NewRegistry()

	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "joyeria",
		Name:      "orders_placed_total",
		Help:      "Orders placed successfully.",
	})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "joyeria",
		Name:      "order_rejections_total",
		Help:      "Order placements rejected, by reason.",
	}, []string{"reason"})
	dispatched := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "joyeria",
		Name:      "shipments_dispatched_total",
		Help:      "Shipments created by the background dispatcher.",
	})

	registry.MustRegister(placed, rejections, dispatched)

	return &StoreMetrics{
		OrdersPlaced:        placed,
		OrderRejections:     rejections,
		ShipmentsDispatched: dispatched,
		registry:            registry,
	}
}

// Handler exposes the registry in Prometheus text format.
func (m *StoreMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
