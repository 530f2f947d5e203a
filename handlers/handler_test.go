package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/services"
	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errStoreDown = errors.New("dial tcp 10.0.0.5:5432: connection refused")

// stubStore answers the methods under test, the embedded interface panics on the rest
type stubStore struct {
	Store
	err   error
	order *models.Order
}

func (s *stubStore) GetCustomer(context.Context, uint) (*models.Customer, error) {
	return nil, s.err
}

func (s *stubStore) TopCustomersByOrderCount(context.Context, int) ([]models.CustomerOrderCount, error) {
	return nil, s.err
}

func (s *stubStore) GetOrder(context.Context, uint) (*models.Order, error) {
	if s.order != nil {
		return s.order, nil
	}
	return nil, s.err
}

func (s *stubStore) Ping(context.Context) error {
	return s.err
}

type mockOrderFlow struct {
	mock.Mock
}

func (m *mockOrderFlow) PlaceOrder(ctx context.Context, in services.PlaceOrderInput) (*models.Order, error) {
	args := m.Called(ctx, in)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *mockOrderFlow) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func newTestRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/customers/top", h.GetTopCustomers)
	r.GET("/customers/:id", h.GetCustomer)
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders/:id", h.GetOrder)
	r.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreFailuresMapToGeneric500(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "get customer", path: "/customers/1"},
		{name: "top customers", path: "/customers/top"},
		{name: "get order", path: "/orders/1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(New(&stubStore{err: errStoreDown}, nil, quietLogger()))

			w := serve(r, http.MethodGet, tc.path, "")

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
		})
	}
}

func TestNotFoundMapping(t *testing.T) {
	notFound := fmt.Errorf("get customer: %w", repository.ErrNotFound)
	r := newTestRouter(New(&stubStore{err: notFound}, nil, quietLogger()))

	w := serve(r, http.MethodGet, "/customers/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Customer not found"}`, w.Body.String())
}

func TestHealthUnavailable(t *testing.T) {
	r := newTestRouter(New(&stubStore{err: errStoreDown}, nil, quietLogger()))

	w := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPlaceOrderPassesLinesThrough(t *testing.T) {
	flow := new(mockOrderFlow)
	want := services.PlaceOrderInput{
		CustomerID:   1,
		RestaurantID: 2,
		Items:        []services.OrderLine{{MenuItemID: 3, Quantity: 2}, {MenuItemID: 4, Quantity: 1}},
	}
	flow.On("PlaceOrder", mock.Anything, want).
		Return(&models.Order{ID: 9, CustomerID: 1, RestaurantID: 2, TotalPrice: 12, Status: models.StatusPending}, nil).
		Once()

	r := newTestRouter(New(&stubStore{}, flow, quietLogger()))
	w := serve(r, http.MethodPost, "/orders",
		`{"customerId":1,"restaurantId":2,"items":[{"menuItemId":3,"quantity":2},{"menuItemId":4,"quantity":1}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPrice":12`)
	flow.AssertExpectations(t)
}

func TestPlaceOrderFailure(t *testing.T) {
	flow := new(mockOrderFlow)
	flow.On("PlaceOrder", mock.Anything, mock.AnythingOfType("services.PlaceOrderInput")).
		Return(nil, fmt.Errorf("place order: %w", repository.ErrConstraint)).
		Once()

	r := newTestRouter(New(&stubStore{}, flow, quietLogger()))
	w := serve(r, http.MethodPost, "/orders", `{"customerId":1,"restaurantId":2,"items":[]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	flow.AssertExpectations(t)
}

func TestUpdateOrderStatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(*mockOrderFlow)
		wantCode int
	}{
		{
			name:     "unknown status",
			body:     `{"status":"Shipped"}`,
			setup:    func(*mockOrderFlow) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing status",
			body:     `{}`,
			setup:    func(*mockOrderFlow) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "forbidden transition",
			body: `{"status":"Pending"}`,
			setup: func(m *mockOrderFlow) {
				m.On("UpdateStatus", mock.Anything, uint(5), models.StatusPending).
					Return(nil, fmt.Errorf("update: %w", statemachine.ErrInvalidTransition)).Once()
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "missing order",
			body: `{"status":"Completed"}`,
			setup: func(m *mockOrderFlow) {
				m.On("UpdateStatus", mock.Anything, uint(5), models.StatusCompleted).
					Return(nil, fmt.Errorf("update: %w", repository.ErrNotFound)).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flow := new(mockOrderFlow)
			tc.setup(flow)
			store := &stubStore{order: &models.Order{ID: 5, Status: models.StatusCompleted}}
			r := newTestRouter(New(store, flow, quietLogger()))

			w := serve(r, http.MethodPatch, "/orders/5/status", tc.body)

			assert.Equal(t, tc.wantCode, w.Code)
			flow.AssertExpectations(t)
		})
	}
}

func TestInvalidTransitionReportsCurrentState(t *testing.T) {
	flow := new(mockOrderFlow)
	flow.On("UpdateStatus", mock.Anything, uint(5), models.StatusPreparing).
		Return(nil, statemachine.ErrInvalidTransition).Once()
	store := &stubStore{order: &models.Order{ID: 5, Status: models.StatusCancelled}}
	r := newTestRouter(New(store, flow, quietLogger()))

	w := serve(r, http.MethodPatch, "/orders/5/status", `{"status":"Preparing"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"current_status":"Cancelled"`)
	assert.Contains(t, w.Body.String(), `"valid_next_states":[]`)
}

func TestUpdateMenuItemRequestFields(t *testing.T) {
	price := 4.0
	available := false
	req := UpdateMenuItemRequest{Price: &price, IsAvailable: &available}

	assert.Equal(t, map[string]any{"price": 4.0, "is_available": false}, req.fields())
	assert.Empty(t, UpdateMenuItemRequest{}.fields())

	over := 1.005
	assert.Equal(t, map[string]any{"price": 1.01}, UpdateMenuItemRequest{Price: &over}.fields())
}
