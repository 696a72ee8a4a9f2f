package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askaruly/dastarhan/internal/domain"
)

type stubWorkerRepo struct {
	workers []*domain.Worker
}

func (r *stubWorkerRepo) Create(ctx context.Context, w *domain.Worker) error { return nil }
func (r *stubWorkerRepo) FindByName(ctx context.Context, name string) (*domain.Worker, error) {
	return nil, nil
}
func (r *stubWorkerRepo) Update(ctx context.Context, w *domain.Worker) error        { return nil }
func (r *stubWorkerRepo) UpdateHeartbeat(ctx context.Context, name string) error    { return nil }
func (r *stubWorkerRepo) IncrementOrdersProcessed(ctx context.Context, name string) error { return nil }
func (r *stubWorkerRepo) ListAll(ctx context.Context) ([]*domain.Worker, error) {
	return r.workers, nil
}

func TestGetWorkersStatus(t *testing.T) {
	now := time.Now()
	repo := &stubWorkerRepo{workers: []*domain.Worker{
		{Name: "kitchen-1", Status: domain.WorkerStatusOnline, LastSeen: now, OrdersProcessed: 12},
		{Name: "kitchen-2", Status: domain.WorkerStatusOnline, LastSeen: now.Add(-5 * time.Minute)},
		{Name: "kitchen-3", Status: domain.WorkerStatusOffline, LastSeen: now},
	}}

	svc := NewService(repo, time.Minute)

	statuses, err := svc.GetWorkersStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	byName := make(map[string]domain.WorkerStatus, len(statuses))
	for _, s := range statuses {
		byName[s.WorkerName] = s.Status
	}

	assert.Equal(t, domain.WorkerStatusOnline, byName["kitchen-1"])
	// A stale heartbeat downgrades a nominally online worker.
	assert.Equal(t, domain.WorkerStatusOffline, byName["kitchen-2"])
	assert.Equal(t, domain.WorkerStatusOffline, byName["kitchen-3"])
}
