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

type EmployeeHandler struct {
	service interfaces.EmployeeService
	logger  logger.Logger
}

func NewEmployeeHandler(service interfaces.EmployeeService, logger logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		logger:  logger,
	}
}

type EmployeeRequest struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	HireDate string  `json:"hire_date"`
}

type EmployeeResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	HireDate string  `json:"hire_date"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	cmd, validationErrors := toEmployeeCommand(req)
	if len(validationErrors) > 0 {
		writeError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	employee, err := h.service.Create(r.Context(), cmd)
	if err != nil {
		h.logger.Error("employee_creation_failed", "Failed to create employee", "", nil, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEmployeeResponse(employee))
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		resp[i] = toEmployeeResponse(employee)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid employee id", http.StatusBadRequest, nil)
		return
	}

	employee, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(employee))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid employee id", http.StatusBadRequest, nil)
		return
	}

	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	cmd, validationErrors := toEmployeeCommand(req)
	if len(validationErrors) > 0 {
		writeError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	employee, err := h.service.Update(r.Context(), id, cmd)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeResponse(employee))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, "Invalid employee id", http.StatusBadRequest, nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEmployeeCommand(req EmployeeRequest) (interfaces.CreateEmployeeCommand, []ValidationError) {
	var errs []ValidationError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(req.Role) == "" {
		errs = append(errs, ValidationError{Field: "role", Message: "role is required"})
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "email is required"})
	}

	hireDate, err := time.Parse(time.DateOnly, req.HireDate)
	if err != nil {
		errs = append(errs, ValidationError{Field: "hire_date", Message: "hire date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return interfaces.CreateEmployeeCommand{}, errs
	}

	return interfaces.CreateEmployeeCommand{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		HireDate: hireDate,
	}, nil
}

func toEmployeeResponse(employee *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       employee.ID,
		Name:     employee.Name,
		Role:     employee.Role,
		Email:    employee.Email,
		Phone:    employee.Phone,
		HireDate: employee.HireDate.Format(time.DateOnly),
	}
}
