package domain

import (
	"errors"
	"time"
)

// Worker represents a fulfillment worker process registered in the store.
type Worker struct {
	ID              int
	Name            string
	Status          WorkerStatus
	LastSeen        time.Time
	OrdersProcessed int
	CreatedAt       time.Time
}

type WorkerStatus string

const (
	WorkerStatusOnline  WorkerStatus = "online"
	WorkerStatusOffline WorkerStatus = "offline"
)

// NewWorker creates a new worker record.
func NewWorker(name string) (*Worker, error) {
	if name == "" {
		return nil, errors.New("worker name is required")
	}

	return &Worker{
		Name:      name,
		Status:    WorkerStatusOnline,
		LastSeen:  time.Now(),
		CreatedAt: time.Now(),
	}, nil
}

// UpdateHeartbeat updates the worker's last seen timestamp.
func (w *Worker) UpdateHeartbeat() {
	w.LastSeen = time.Now()
	w.Status = WorkerStatusOnline
}

// SetOffline marks the worker as offline.
func (w *Worker) SetOffline() {
	w.Status = WorkerStatusOffline
}

// IsOnline checks if the worker is considered online based on last heartbeat.
func (w *Worker) IsOnline(heartbeatTimeout time.Duration) bool {
	if w.Status == WorkerStatusOffline {
		return false
	}
	return time.Since(w.LastSeen) <= heartbeatTimeout
}
