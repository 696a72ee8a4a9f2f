package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type nopLogger struct{}

func (nopLogger) Info(action, message, requestID string, details map[string]interface{})  {}
func (nopLogger) Debug(action, message, requestID string, details map[string]interface{}) {}
func (nopLogger) Warn(action, message, requestID string, details map[string]interface{})  {}
func (nopLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
}

type stubOrderService struct {
	orders map[int]*domain.Order
}

func (s *stubOrderService) CreateOrder(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	items := make([]domain.OrderItem, len(cmd.Items))
	for i, item := range cmd.Items {
		items[i] = domain.OrderItem{ID: i + 1, MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}
	return &domain.Order{
		ID:         1,
		CustomerID: cmd.CustomerID,
		Status:     domain.StatusPending,
		Items:      items,
		CreatedAt:  time.Now(),
	}, nil
}

func (s *stubOrderService) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *stubOrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		out = append(out, order)
	}
	return out, nil
}

func (s *stubOrderService) ReplaceOrder(ctx context.Context, id int, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	if _, ok := s.orders[id]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &domain.Order{ID: id, CustomerID: cmd.CustomerID, Status: domain.StatusPending}, nil
}

func (s *stubOrderService) PatchOrder(ctx context.Context, id int, cmd interfaces.PatchOrderCommand) (*domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if cmd.Status != nil {
		status, err := domain.ParseStatus(*cmd.Status)
		if err != nil {
			return nil, err
		}
		order.Status = status
	}
	return order, nil
}

func (s *stubOrderService) DeleteOrder(ctx context.Context, id int) error {
	if _, ok := s.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(s.orders, id)
	return nil
}

func (s *stubOrderService) DailySummary(ctx context.Context, day time.Time, page, perPage int) (*interfaces.DailySummary, error) {
	return &interfaces.DailySummary{Date: day.Format(time.DateOnly), Page: page, PerPage: perPage}, nil
}

func newOrderRouter(svc interfaces.OrderService) http.Handler {
	h := NewOrderHandler(svc, nopLogger{})
	r := chi.NewRouter()
	r.Post("/orders", h.Create)
	r.Get("/orders/{id}", h.Get)
	r.Patch("/orders/{id}", h.Patch)
	r.Delete("/orders/{id}", h.Delete)
	return r
}

func TestCreateOrderEndpoint(t *testing.T) {
	router := newOrderRouter(&stubOrderService{})

	body := `{"customer_id": 1, "items": [{"menu_item_id": 10, "quantity": 2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.CustomerID)
	assert.Equal(t, "Pending", resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 10, resp.Items[0].MenuItemID)
}

func TestCreateOrderEndpointRejectsMalformedBody(t *testing.T) {
	router := newOrderRouter(&stubOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	router := newOrderRouter(&stubOrderService{})

	body := `{"customer_id": 0, "status": "Burnt", "items": [{"menu_item_id": 0, "quantity": 0}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	fields := make([]string, len(resp.Errors))
	for i, v := range resp.Errors {
		fields[i] = v.Field
	}
	assert.Contains(t, fields, "customer_id")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "items[0].menu_item_id")
	assert.Contains(t, fields, "items[0].quantity")
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	router := newOrderRouter(&stubOrderService{orders: map[int]*domain.Order{}})

	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderEndpointInvalidID(t *testing.T) {
	router := newOrderRouter(&stubOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchOrderEndpoint(t *testing.T) {
	svc := &stubOrderService{orders: map[int]*domain.Order{
		7: {ID: 7, CustomerID: 1, Status: domain.StatusPreparing},
	}}
	router := newOrderRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/orders/7", strings.NewReader(`{"status": "Completed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Completed", resp.Status)
}

func TestPatchOrderEndpointRejectsInvalidStatus(t *testing.T) {
	svc := &stubOrderService{orders: map[int]*domain.Order{
		7: {ID: 7, CustomerID: 1, Status: domain.StatusPreparing},
	}}
	router := newOrderRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/orders/7", strings.NewReader(`{"status": "Cancelled"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	svc := &stubOrderService{orders: map[int]*domain.Order{
		7: {ID: 7, CustomerID: 1, Status: domain.StatusPending},
	}}
	router := newOrderRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/orders/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, svc.orders)
}

func TestSummaryEndpointQueryValidation(t *testing.T) {
	h := NewSummaryHandler(&stubOrderService{}, nopLogger{})
	r := chi.NewRouter()
	r.Get("/summary", h.Get)

	cases := []struct {
		name string
		url  string
		code int
	}{
		{"defaults", "/summary", http.StatusOK},
		{"explicit date", "/summary?date=2026-08-31", http.StatusOK},
		{"bad date", "/summary?date=31/08/2026", http.StatusBadRequest},
		{"zero page", "/summary?page=0", http.StatusBadRequest},
		{"per_page too large", "/summary?per_page=500", http.StatusBadRequest},
		{"non-numeric page", "/summary?page=two", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
