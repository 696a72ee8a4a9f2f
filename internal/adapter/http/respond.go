package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/askaruly/dastarhan/internal/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, message string, statusCode int, validationErrors []ValidationError) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:  message,
		Errors: validationErrors,
	})
}

// writeServiceError maps domain errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound):
		writeError(w, err.Error(), http.StatusNotFound, nil)
	case errors.Is(err, domain.ErrDuplicateCustomerEmail),
		errors.Is(err, domain.ErrDuplicateEmployeeEmail),
		errors.Is(err, domain.ErrDuplicateEmployeePhone),
		errors.Is(err, domain.ErrDuplicateMenuItemName),
		errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, err.Error(), http.StatusBadRequest, nil)
	default:
		writeError(w, "Internal server error", http.StatusInternalServerError, nil)
	}
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
