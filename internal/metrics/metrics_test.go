package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStoreMetricsExposition(t *testing.T) {
	m := NewStoreMetrics()

	m.OrdersPlaced.Inc()
	m.OrderRejections.WithLabelValues("insufficient_stock").Inc()
	m.OrderRejections.WithLabelValues("insufficient_stock").Inc()
	m.ShipmentsDispatched.Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "joyeria_orders_placed_total 1") {
		t.Errorf("missing orders placed counter:\n%s", body)
	}
	if !strings.Contains(body, `joyeria_order_rejections_total{reason="insufficient_stock"} 2`) {
		t.Errorf("missing rejection counter:\n%s", body)
	}
	if !strings.Contains(body, "joyeria_shipments_dispatched_total 1") {
		t.Errorf("missing dispatch counter:\n%s", body)
	}
}

func TestSeparateRegistries(t *testing.T) {
	// Independent instances must not collide on registration.
	_ = NewStoreMetrics()
	_ = NewStoreMetrics()
}
