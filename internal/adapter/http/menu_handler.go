package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type MenuHandler struct {
	service interfaces.MenuService
	logger  logger.Logger
}

func NewMenuHandler(service interfaces.MenuService, logger logger.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

type MenuItemRequest struct {
	Name                   string  `json:"name"`
	Description            *string `json:"description,omitempty"`
	Price                  float64 `json:"price"`
	Category               string  `json:"category"`
	PreparationTimeMinutes int     `json:"preparation_time_minutes"`
}

type MenuItemResponse struct {
	ID                     int     `json:"id"`
	Name                   string  `json:"name"`
	Description            *string `json:"description"`
	Price                  float64 `json:"price"`
	Category               string  `json:"category"`
	PreparationTimeMinutes int     `json:"preparation_time_minutes"`
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateMenuItemRequest(req); len(validationErrors) > 0 {
		writeError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	item, err := h.service.Create(r.Context(), toMenuItemCommand(req))
	if err != nil {
		h.logger.Error("menu_item_creation_failed", "Failed to create menu item", "", nil, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMenuItemResponse(item))
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]MenuItemResponse, len(items))
	for i, item := range items {
		resp[i] = toMenuItemResponse(item)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMenuItemResponse(item))
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	var req MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateMenuItemRequest(req); len(validationErrors) > 0 {
		writeError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	item, err := h.service.Update(r.Context(), id, toMenuItemCommand(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMenuItemResponse(item))
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateMenuItemRequest(req MenuItemRequest) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, ValidationError{Field: "category", Message: "category is required"})
	}
	if req.Price <= 0 {
		errs = append(errs, ValidationError{Field: "price", Message: "price must be greater than 0"})
	}
	if req.PreparationTimeMinutes <= 0 {
		errs = append(errs, ValidationError{Field: "preparation_time_minutes", Message: "preparation time must be greater than 0"})
	}

	return errs
}

func toMenuItemCommand(req MenuItemRequest) interfaces.CreateMenuItemCommand {
	return interfaces.CreateMenuItemCommand{
		Name:                   req.Name,
		Description:            req.Description,
		Price:                  req.Price,
		Category:               req.Category,
		PreparationTimeMinutes: req.PreparationTimeMinutes,
	}
}

func toMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:                     item.ID,
		Name:                   item.Name,
		Description:            item.Description,
		Price:                  item.Price,
		Category:               item.Category,
		PreparationTimeMinutes: item.PreparationTimeMinutes,
	}
}
