package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/server/http/dto"
	"github.com/hoseki-store/joyeria/internal/server/http/middleware"
	testhelpers "github.com/hoseki-store/joyeria/internal/test"
	"github.com/hoseki-store/joyeria/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	route, _, _ := strings.Cut(path, "?")
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{
		Run:        "12345678",
		CheckDigit: "5",
		Name:       "Ana",
		Surname1:   "Soto",
		Email:      "ana@example.cl",
		Password:   "secret",
	})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}

	var decoded dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Token != "stub-token" || decoded.Role != "usuario" {
		t.Fatalf("unexpected auth response: %+v", decoded)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	validBody := []byte(`{"run":"12345678","check_digit":"5","name":"Ana","email":"ana@example.cl","password":"secret"}`)

	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "bad birth date", body: []byte(`{"run":"1","check_digit":"9","email":"a@b.cl","password":"x","birth_date":"yesterday"}`), status: http.StatusBadRequest},
		{name: "invalid rut", body: validBody, facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, *model.User, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidRut
		}}, status: http.StatusBadRequest},
		{name: "duplicate email", body: validBody, facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, *model.User, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrDuplicateEmail
		}}, status: http.StatusConflict},
		{name: "internal", body: validBody, facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, *model.User, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{AuthenticateFn: func(ctx context.Context, email, password string) (*model.User, string, error) {
		return &model.User{ID: 3, Email: email, Roles: []model.Role{model.RoleAdmin}}, "admin-token", nil
	}}
	body, _ := json.Marshal(dto.LoginRequest{Email: "jefa@example.cl", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(facade).Login, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var decoded dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Role != "admin" {
		t.Fatalf("expected admin role, got %q", decoded.Role)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid", body: []byte(`{"email":"a@b.cl","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"email":"a@b.cl","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerPlace(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, userID int64, req usecase.PlaceOrderRequest) (*model.Order, error) {
		if userID != 1 {
			t.Fatalf("unexpected user id %d", userID)
		}
		if len(req.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(req.Items))
		}
		return &model.Order{
			ID:     10,
			Status: model.OrderStatusPaid,
			Total:  37500,
			UserID: userID,
			Lines: []model.OrderLine{
				{ID: 1, ProductID: 5, Quantity: 2, Subtotal: 25000},
				{ID: 2, ProductID: 6, Quantity: 1, Subtotal: 12500},
			},
		}, nil
	}}

	body := []byte(`{"shipping_address":"Av. Providencia 123","payment_method":"webpay","items":[{"product_id":5,"quantity":2},{"product_id":6,"quantity":1}]}`)
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Place, asUser(1), body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Total != 37500 || len(decoded.Lines) != 2 {
		t.Fatalf("unexpected order response: %+v", decoded)
	}

	sum := int64(0)
	for _, line := range decoded.Lines {
		sum += line.Subtotal
	}
	if sum != decoded.Total {
		t.Fatalf("total %d does not match line sum %d", decoded.Total, sum)
	}
}

func TestOrderHandlerPlaceFailures(t *testing.T) {
	validBody := []byte(`{"shipping_address":"Calle 1","payment_method":"webpay","items":[{"product_id":5,"quantity":2}]}`)

	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "insufficient stock", body: validBody, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, usecase.PlaceOrderRequest) (*model.Order, error) {
			return nil, &domainErrors.InsufficientStockError{ProductID: 5, ProductName: "Anillo", Requested: 2, Available: 1}
		}}, status: http.StatusBadRequest},
		{name: "unknown product", body: validBody, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, usecase.PlaceOrderRequest) (*model.Order, error) {
			return nil, domainErrors.ErrProductNotFound
		}}, status: http.StatusBadRequest},
		{name: "unpriced product", body: validBody, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, usecase.PlaceOrderRequest) (*model.Order, error) {
			return nil, domainErrors.ErrInvalidProductPrice
		}}, status: http.StatusBadRequest},
		{name: "empty cart", body: validBody, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, usecase.PlaceOrderRequest) (*model.Order, error) {
			return nil, domainErrors.ErrInvalidOrderRequest
		}}, status: http.StatusBadRequest},
		{name: "internal", body: validBody, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, usecase.PlaceOrderRequest) (*model.Order, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(tt.facade).Place, asUser(1), tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerMine(t *testing.T) {
	t.Run("empty history answers 204", func(t *testing.T) {
		facade := testhelpers.OrderFacadeStub{ByUserFn: func(context.Context, int64) ([]model.Order, error) {
			return []model.Order{}, nil
		}}
		resp := performRequest(t, http.MethodGet, "/orders/mine", NewOrderHandler(facade).Mine, asUser(1), nil, nil)
		if resp.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", resp.Code)
		}
	})

	t.Run("orders are returned", func(t *testing.T) {
		facade := testhelpers.OrderFacadeStub{ByUserFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
			return []model.Order{{ID: 1, UserID: userID}, {ID: 2, UserID: userID}}, nil
		}}
		resp := performRequest(t, http.MethodGet, "/orders/mine", NewOrderHandler(facade).Mine, asUser(1), nil, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
		var decoded []dto.OrderResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(decoded) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(decoded))
		}
	})
}

func TestOrderHandlerDateRange(t *testing.T) {
	t.Run("bad dates answer 400", func(t *testing.T) {
		facade := testhelpers.OrderFacadeStub{}
		resp := performRequest(t, http.MethodGet, "/orders/range?start=bad&end=2026-01-31", NewOrderHandler(facade).ListByDateRange, asUser(1), nil, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("empty range answers 204", func(t *testing.T) {
		facade := testhelpers.OrderFacadeStub{ByRangeFn: func(context.Context, time.Time, time.Time) ([]model.Order, error) {
			return nil, nil
		}}
		resp := performRequest(t, http.MethodGet, "/orders/range?start=2026-01-01&end=2026-01-31", NewOrderHandler(facade).ListByDateRange, asUser(1), nil, nil)
		if resp.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", resp.Code)
		}
	})
}

func TestOrderHandlerGetNotFound(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{GetFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrOrderNotFound
	}}

	router := gin.New()
	router.GET("/orders/:id", NewOrderHandler(facade).Get)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/99", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/zero", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed id, got %d", w.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		resp := performRequest(t, http.MethodGet, "/healthz", NewHealthHandler(healthStub{}).Check, nil, nil, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.Code)
		}
	})

	t.Run("degraded", func(t *testing.T) {
		resp := performRequest(t, http.MethodGet, "/healthz", NewHealthHandler(healthStub{err: errors.New("no database")}).Check, nil, nil, nil)
		if resp.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", resp.Code)
		}
	})
}

type healthStub struct {
	err error
}

func (s healthStub) HealthCheck(context.Context) error { return s.err }
