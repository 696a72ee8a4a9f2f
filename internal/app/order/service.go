package order

import (
	"context"
	"fmt"
	"time"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

const enqueueTimeout = 5 * time.Second

type Service struct {
	orderRepo    interfaces.OrderRepository
	customerRepo interfaces.CustomerRepository
	menuRepo     interfaces.MenuItemRepository
	publisher    interfaces.JobPublisher
	logger       logger.Logger
}

func NewService(
	orderRepo interfaces.OrderRepository,
	customerRepo interfaces.CustomerRepository,
	menuRepo interfaces.MenuItemRepository,
	publisher interfaces.JobPublisher,
	lgr logger.Logger,
) *Service {
	return &Service{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		menuRepo:     menuRepo,
		publisher:    publisher,
		logger:       lgr,
	}
}

func (s *Service) CreateOrder(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	if err := s.validateReferences(ctx, cmd.CustomerID, cmd.Items); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, len(cmd.Items))
	for i, item := range cmd.Items {
		items[i] = domain.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	order, err := domain.NewOrder(cmd.CustomerID, items)
	if err != nil {
		s.logger.Error("validation_failed", "Order validation failed", "", nil, err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if cmd.Status != "" {
		status, err := domain.ParseStatus(cmd.Status)
		if err != nil {
			return nil, err
		}
		order.Status = status
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to create order", "", nil, err)
		return nil, err
	}
	s.logger.Debug("order_created", "Order created in DB", "", map[string]interface{}{"order_id": order.ID})

	// Best-effort side channel, detached from the request: the response never
	// depends on the enqueue, and an enqueue failure leaves the order out of
	// the pipeline rather than failing the creation.
	go s.enqueueFulfillment(order.ID)

	return order, nil
}

func (s *Service) enqueueFulfillment(orderID int) {
	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()

	msg := interfaces.FulfillmentMessage{OrderID: orderID}
	if err := s.publisher.PublishFulfillment(ctx, msg); err != nil {
		s.logger.Warn("enqueue_failed",
			fmt.Sprintf("Failed to enqueue fulfillment job for order %d", orderID), "",
			map[string]interface{}{"order_id": orderID, "error": err.Error()})
		return
	}

	s.logger.Debug("job_enqueued", "Fulfillment job enqueued", "", map[string]interface{}{"order_id": orderID})
}

func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *Service) ReplaceOrder(ctx context.Context, id int, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	if _, err := s.orderRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, cmd.CustomerID, cmd.Items); err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if cmd.Status != "" {
		parsed, err := domain.ParseStatus(cmd.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	items := make([]domain.OrderItem, len(cmd.Items))
	for i, item := range cmd.Items {
		items[i] = domain.OrderItem{
			OrderID:    id,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	order := &domain.Order{
		ID:         id,
		CustomerID: cmd.CustomerID,
		Status:     status,
		Items:      items,
	}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.orderRepo.Replace(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, id)
}

func (s *Service) PatchOrder(ctx context.Context, id int, cmd interfaces.PatchOrderCommand) (*domain.Order, error) {
	var status *domain.Status
	if cmd.Status != nil {
		parsed, err := domain.ParseStatus(*cmd.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	if cmd.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *cmd.CustomerID); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Patch(ctx, id, cmd.CustomerID, status); err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, id)
}

func (s *Service) DeleteOrder(ctx context.Context, id int) error {
	return s.orderRepo.Delete(ctx, id)
}

func (s *Service) DailySummary(ctx context.Context, day time.Time, page, perPage int) (*interfaces.DailySummary, error) {
	return s.orderRepo.DailySummary(ctx, day, page, perPage)
}

func (s *Service) validateReferences(ctx context.Context, customerID int, items []interfaces.CreateOrderItemCommand) error {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := s.menuRepo.GetByID(ctx, item.MenuItemID); err != nil {
			return fmt.Errorf("menu item %d: %w", item.MenuItemID, err)
		}
	}
	return nil
}
