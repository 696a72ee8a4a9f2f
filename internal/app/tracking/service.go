package tracking

import (
	"context"
	"time"

	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

// Service exposes the fulfillment worker fleet's status to the API.
type Service struct {
	workerRepo       interfaces.WorkerRepository
	heartbeatTimeout time.Duration
}

func NewService(workerRepo interfaces.WorkerRepository, heartbeatTimeout time.Duration) *Service {
	return &Service{
		workerRepo:       workerRepo,
		heartbeatTimeout: heartbeatTimeout,
	}
}

func (s *Service) GetWorkersStatus(ctx context.Context) ([]*interfaces.WorkerStatusResponse, error) {
	workers, err := s.workerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var resp []*interfaces.WorkerStatusResponse
	for _, w := range workers {
		status := w.Status
		if status == domain.WorkerStatusOnline && !w.IsOnline(s.heartbeatTimeout) {
			status = domain.WorkerStatusOffline
		}

		resp = append(resp, &interfaces.WorkerStatusResponse{
			WorkerName:      w.Name,
			Status:          status,
			OrdersProcessed: w.OrdersProcessed,
			LastSeen:        w.LastSeen,
		})
	}

	return resp, nil
}
