package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type SummaryHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewSummaryHandler(service interfaces.OrderService, logger logger.Logger) *SummaryHandler {
	return &SummaryHandler{
		service: service,
		logger:  logger,
	}
}

// Get serves the paginated per-day order summary. Defaults: today, page 1,
// five orders per page.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			writeError(w, "Invalid date format. Use YYYY-MM-DD.", http.StatusBadRequest, nil)
			return
		}
		day = parsed
	}

	page := queryInt(r, "page", 1)
	if page < 1 {
		writeError(w, "page must be at least 1", http.StatusBadRequest, nil)
		return
	}

	perPage := queryInt(r, "per_page", 5)
	if perPage < 1 || perPage > 100 {
		writeError(w, "per_page must be between 1 and 100", http.StatusBadRequest, nil)
		return
	}

	summary, err := h.service.DailySummary(r.Context(), day, page, perPage)
	if err != nil {
		h.logger.Error("summary_failed", "Failed to build order summary", "", nil, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}
