package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

type OrderRequest struct {
	CustomerID int                `json:"customer_id"`
	Status     string             `json:"status,omitempty"`
	Items      []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type PatchOrderRequest struct {
	CustomerID *int    `json:"customer_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

type OrderResponse struct {
	ID         int                 `json:"id"`
	CustomerID int                 `json:"customer_id"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID         int `json:"id"`
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateOrderRequest(req); len(validationErrors) > 0 {
		h.logger.Error("validation_failed", "Order validation failed", "", map[string]interface{}{
			"errors": validationErrors,
		}, errors.New("validation failed"))

		writeError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	result, err := h.service.CreateOrder(r.Context(), toOrderCommand(req))
	if err != nil {
		h.logger.Error("order_creation_failed", "Failed to create order", "", nil, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(result))
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid order id", http.StatusBadRequest, nil)
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid order id", http.StatusBadRequest, nil)
		return
	}

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateOrderRequest(req); len(validationErrors) > 0 {
		writeError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	order, err := h.service.ReplaceOrder(r.Context(), id, toOrderCommand(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid order id", http.StatusBadRequest, nil)
		return
	}

	var req PatchOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	order, err := h.service.PatchOrder(r.Context(), id, interfaces.PatchOrderCommand{
		CustomerID: req.CustomerID,
		Status:     req.Status,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid order id", http.StatusBadRequest, nil)
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateOrderRequest(req OrderRequest) []ValidationError {
	var errs []ValidationError

	if req.CustomerID < 1 {
		errs = append(errs, ValidationError{
			Field:   "customer_id",
			Message: "customer id is required",
		})
	}

	if req.Status != "" {
		if _, err := domain.ParseStatus(req.Status); err != nil {
			errs = append(errs, ValidationError{
				Field:   "status",
				Message: "status must be one of: Pending, Preparing, Completed",
			})
		}
	}

	for i, item := range req.Items {
		itemPrefix := fmt.Sprintf("items[%d]", i)

		if item.MenuItemID < 1 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.menu_item_id", itemPrefix),
				Message: "menu item id is required",
			})
		}
		if item.Quantity < 1 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.quantity", itemPrefix),
				Message: "item quantity must be at least 1",
			})
		}
	}

	return errs
}

func toOrderCommand(req OrderRequest) interfaces.CreateOrderCommand {
	items := make([]interfaces.CreateOrderItemCommand, len(req.Items))
	for i, item := range req.Items {
		items[i] = interfaces.CreateOrderItemCommand{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}
	return interfaces.CreateOrderCommand{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Items:      items,
	}
}

func toOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}
	return OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		Items:      items,
	}
}
