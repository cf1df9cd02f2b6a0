package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/metrics"
	"github.com/hoseki-store/joyeria/internal/server/http/handlers"
	testhelpers "github.com/hoseki-store/joyeria/internal/test"
)

func newTestEngine(facade testhelpers.StoreFacadeStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, metrics.NewStoreMetrics(), logger)
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			UserFn: func(ctx context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Roles: []model.Role{model.RoleAdmin}}, nil
			},
		},
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			ListFn: func(context.Context) ([]model.Order, error) {
				return []model.Order{{ID: 1, Status: model.OrderStatusPaid, OrderDate: time.Unix(0, 0)}}, nil
			},
		},
	}
	engine := newTestEngine(facade)

	body, _ := json.Marshal(map[string]string{
		"run": "12345678", "check_digit": "5", "name": "Ana",
		"email": "ana@example.cl", "password": "secret",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for healthz, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for metrics, got %d", resp.Code)
	}
}

func TestSetupRoleEnforcement(t *testing.T) {
	facade := testhelpers.StoreFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			UserFn: func(ctx context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Roles: []model.Role{model.RoleCustomer}}, nil
			},
		},
	}
	engine := newTestEngine(facade)

	// Customers cannot reach staff order listings.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for customer, got %d", resp.Code)
	}

	// Anonymous requests never reach protected handlers.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader([]byte(`{}`)))
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	// Catalog browsing stays public.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/3", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for public product, got %d", resp.Code)
	}
}

var _ handlers.StoreFacade = (*testhelpers.StoreFacadeStub)(nil)
