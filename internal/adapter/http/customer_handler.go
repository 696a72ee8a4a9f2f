package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type CustomerHandler struct {
	service interfaces.CustomerService
	logger  logger.Logger
}

func NewCustomerHandler(service interfaces.CustomerService, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
	}
}

type CustomerRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type CustomerResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	JoinedDate string  `json:"joined_date"`
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateCustomerRequest(req); len(validationErrors) > 0 {
		writeError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	customer, err := h.service.Create(r.Context(), interfaces.CreateCustomerCommand{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.logger.Error("customer_creation_failed", "Failed to create customer", "", nil, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		resp[i] = toCustomerResponse(customer)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid customer id", http.StatusBadRequest, nil)
		return
	}

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid customer id", http.StatusBadRequest, nil)
		return
	}

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateCustomerRequest(req); len(validationErrors) > 0 {
		writeError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	customer, err := h.service.Update(r.Context(), id, interfaces.CreateCustomerCommand{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid customer id", http.StatusBadRequest, nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateCustomerRequest(req CustomerRequest) []ValidationError {
	var errs []ValidationError

	name := strings.TrimSpace(req.Name)
	if len(name) < 1 {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	} else if len(name) > 100 {
		errs = append(errs, ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}

	if req.Email != nil && len(*req.Email) > 120 {
		errs = append(errs, ValidationError{Field: "email", Message: "email must not exceed 120 characters"})
	}
	if req.Phone != nil && len(*req.Phone) > 20 {
		errs = append(errs, ValidationError{Field: "phone", Message: "phone must not exceed 20 characters"})
	}

	return errs
}

func toCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
		Phone:      customer.Phone,
		JoinedDate: customer.JoinedDate.Format(time.DateOnly),
	}
}
