package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

// Service drives orders through Pending -> Preparing -> Completed. Each stage
// is a timed wait followed by a compare-and-set status write, so a job never
// overwrites an out-of-band edit and a redelivered duplicate can at worst
// lose the race and no-op.
type Service struct {
	store             interfaces.FulfillmentStore
	workerRepo        interfaces.WorkerRepository
	logger            logger.Logger
	workerName        string
	heartbeatInterval time.Duration
	ackDelay          time.Duration
	prepUnit          time.Duration
}

// NewService builds the scheduler. ackDelay is the fixed queue-to-kitchen
// acknowledgment wait before Preparing; prepUnit is the duration of one
// preparation-time minute (production: time.Minute).
func NewService(
	store interfaces.FulfillmentStore,
	workerRepo interfaces.WorkerRepository,
	lgr logger.Logger,
	workerName string,
	heartbeatInterval time.Duration,
	ackDelay time.Duration,
	prepUnit time.Duration,
) *Service {
	return &Service{
		store:             store,
		workerRepo:        workerRepo,
		logger:            lgr,
		workerName:        workerName,
		heartbeatInterval: heartbeatInterval,
		ackDelay:          ackDelay,
		prepUnit:          prepUnit,
	}
}

func (s *Service) Start(ctx context.Context) error {
	worker, err := s.workerRepo.FindByName(ctx, s.workerName)
	if err == nil {
		if worker.Status == domain.WorkerStatusOnline {
			return fmt.Errorf("worker with name %s is already online", s.workerName)
		}
		worker.UpdateHeartbeat()
		if err := s.workerRepo.Update(ctx, worker); err != nil {
			return err
		}
	} else {
		worker, err = domain.NewWorker(s.workerName)
		if err != nil {
			return err
		}
		if err := s.workerRepo.Create(ctx, worker); err != nil {
			return err
		}
	}

	s.logger.Info("worker_registered", fmt.Sprintf("Worker %s registered", s.workerName), "", nil)

	go s.heartbeatLoop(ctx)

	return nil
}

func (s *Service) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(s.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.workerRepo.UpdateHeartbeat(ctx, s.workerName); err != nil {
				s.logger.Error("heartbeat_failed", "Failed to update heartbeat", "", nil, err)
			} else {
				s.logger.Debug("heartbeat_sent", "Heartbeat sent", "", nil)
			}
		}
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	worker, err := s.workerRepo.FindByName(ctx, s.workerName)
	if err != nil {
		return err
	}
	worker.SetOffline()
	return s.workerRepo.Update(ctx, worker)
}

// ProcessOrder executes one fulfillment job. The stage to run is re-derived
// from the order's persisted status, never from the message, which keeps the
// job idempotent under at-least-once redelivery.
func (s *Service) ProcessOrder(ctx context.Context, orderID int) error {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			s.logger.Warn("order_not_found", fmt.Sprintf("Order %d not found, abandoning job", orderID), "",
				map[string]interface{}{"order_id": orderID})
			return nil
		}
		return s.storeFailure(ctx, orderID, err)
	}

	switch order.Status {
	case domain.StatusCompleted:
		s.logger.Debug("job_already_done", fmt.Sprintf("Order %d already completed", orderID), "",
			map[string]interface{}{"order_id": orderID})
		return nil

	case domain.StatusPreparing:
		return s.completionStage(ctx, order)

	case domain.StatusPending:
		ok, err := s.preparationStage(ctx, order)
		if err != nil || !ok {
			return err
		}
		return s.completionStage(ctx, order)

	default:
		s.logger.Warn("unknown_status", fmt.Sprintf("Order %d has status %q, abandoning job", orderID, order.Status), "",
			map[string]interface{}{"order_id": orderID, "status": string(order.Status)})
		return nil
	}
}

// preparationStage waits out the acknowledgment delay and moves the order
// from Pending to Preparing. ok is false when the job must not continue to
// the completion stage.
func (s *Service) preparationStage(ctx context.Context, order *domain.Order) (bool, error) {
	if err := wait(ctx, s.ackDelay); err != nil {
		return false, s.jobCut(order.ID, err)
	}

	ok, err := s.store.CompareAndSetStatus(ctx, order.ID, domain.StatusPending, domain.StatusPreparing)
	if err != nil {
		return false, s.storeFailure(ctx, order.ID, err)
	}
	if !ok {
		s.logAbandonedStage(ctx, order.ID, domain.StatusPending)
		return false, nil
	}

	s.logger.Info("order_preparing", fmt.Sprintf("Order %d is preparing", order.ID), "",
		map[string]interface{}{"order_id": order.ID})
	return true, nil
}

// completionStage waits out the preparation time and moves the order from
// Preparing to Completed.
func (s *Service) completionStage(ctx context.Context, order *domain.Order) error {
	prepWait, err := s.preparationWait(ctx, order)
	if err != nil {
		return s.storeFailure(ctx, order.ID, err)
	}

	if err := wait(ctx, prepWait); err != nil {
		return s.jobCut(order.ID, err)
	}

	ok, err := s.store.CompareAndSetStatus(ctx, order.ID, domain.StatusPreparing, domain.StatusCompleted)
	if err != nil {
		return s.storeFailure(ctx, order.ID, err)
	}
	if !ok {
		s.logAbandonedStage(ctx, order.ID, domain.StatusPreparing)
		return nil
	}

	s.logger.Info("order_completed", fmt.Sprintf("Order %d has been completed", order.ID), "",
		map[string]interface{}{"order_id": order.ID})

	if s.workerRepo != nil {
		if err := s.workerRepo.IncrementOrdersProcessed(ctx, s.workerName); err != nil {
			s.logger.Error("db_error", "Failed to increment worker stats", "", nil, err)
		}
	}

	return nil
}

// preparationWait is the maximum preparation time across the order's items,
// not the sum: the kitchen prepares all items in parallel. Zero items means
// zero wait. Menu items deleted mid-flight are skipped.
func (s *Service) preparationWait(ctx context.Context, order *domain.Order) (time.Duration, error) {
	maxMinutes := 0
	for _, item := range order.Items {
		menuItem, err := s.store.GetMenuItem(ctx, item.MenuItemID)
		if err != nil {
			if errors.Is(err, domain.ErrMenuItemNotFound) {
				continue
			}
			return 0, err
		}
		if menuItem.PreparationTimeMinutes > maxMinutes {
			maxMinutes = menuItem.PreparationTimeMinutes
		}
	}
	return time.Duration(maxMinutes) * s.prepUnit, nil
}

// logAbandonedStage records why a compare-and-set write did not apply: either
// the order vanished mid-sleep or its status was changed out-of-band (manual
// edit, or a duplicate delivery got there first). Neither is retried.
func (s *Service) logAbandonedStage(ctx context.Context, orderID int, expected domain.Status) {
	order, err := s.store.GetOrder(ctx, orderID)
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		s.logger.Warn("order_deleted", fmt.Sprintf("Order %d deleted mid-flight, abandoning job", orderID), "",
			map[string]interface{}{"order_id": orderID})
	case err != nil:
		s.logger.Error("db_error", "Failed to re-read order after failed transition", "",
			map[string]interface{}{"order_id": orderID}, err)
	default:
		s.logger.Debug("precondition_failed",
			fmt.Sprintf("Order %d status is %s, expected %s; leaving it as is", orderID, order.Status, expected), "",
			map[string]interface{}{"order_id": orderID, "status": string(order.Status), "expected": string(expected)})
	}
}

// jobCut handles the hard-budget cut-off mid-wait. Writes already committed
// stay committed, the remaining stage is never attempted, and the message is
// acked: an order whose slowest item pushes the total past the budget stays
// in Preparing permanently. Known limitation of the fixed budget.
func (s *Service) jobCut(orderID int, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		s.logger.Error("job_timed_out", fmt.Sprintf("Order %d job exceeded its time budget", orderID), "",
			map[string]interface{}{"order_id": orderID}, err)
		return nil
	}
	return err
}

// storeFailure distinguishes a store call that failed because the job's clock
// ran out from a genuine store error.
func (s *Service) storeFailure(ctx context.Context, orderID int, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return s.jobCut(orderID, ctxErr)
	}
	return err
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
