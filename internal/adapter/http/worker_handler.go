package http

import (
	"net/http"

	"github.com/askaruly/dastarhan/internal/interfaces"
)

type WorkerHandler struct {
	service interfaces.WorkerStatusService
}

func NewWorkerHandler(service interfaces.WorkerStatusService) *WorkerHandler {
	return &WorkerHandler{service: service}
}

func (h *WorkerHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	workers, err := h.service.GetWorkersStatus(r.Context())
	if err != nil {
		writeError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]map[string]interface{}, len(workers))
	for i, worker := range workers {
		resp[i] = map[string]interface{}{
			"worker_name":      worker.WorkerName,
			"status":           worker.Status,
			"orders_processed": worker.OrdersProcessed,
			"last_seen":        worker.LastSeen,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
