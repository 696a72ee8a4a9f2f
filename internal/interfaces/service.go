package interfaces

import (
	"context"
	"time"

	"github.com/askaruly/dastarhan/internal/domain"
)

// Commands for services

type CreateOrderCommand struct {
	CustomerID int
	Status     string
	Items      []CreateOrderItemCommand
}

type CreateOrderItemCommand struct {
	MenuItemID int
	Quantity   int
}

type PatchOrderCommand struct {
	CustomerID *int
	Status     *string
}

type CreateCustomerCommand struct {
	Name  string
	Email *string
	Phone *string
}

type CreateEmployeeCommand struct {
	Name     string
	Role     string
	Email    string
	Phone    *string
	HireDate time.Time
}

type CreateMenuItemCommand struct {
	Name                   string
	Description            *string
	Price                  float64
	Category               string
	PreparationTimeMinutes int
}

// Service interfaces (Business Logic)

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ReplaceOrder(ctx context.Context, id int, cmd CreateOrderCommand) (*domain.Order, error)
	PatchOrder(ctx context.Context, id int, cmd PatchOrderCommand) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int) error
	DailySummary(ctx context.Context, day time.Time, page, perPage int) (*DailySummary, error)
}

type FulfillmentService interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
	ProcessOrder(ctx context.Context, orderID int) error
}

type CustomerService interface {
	Create(ctx context.Context, cmd CreateCustomerCommand) (*domain.Customer, error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, id int, cmd CreateCustomerCommand) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}

type EmployeeService interface {
	Create(ctx context.Context, cmd CreateEmployeeCommand) (*domain.Employee, error)
	Get(ctx context.Context, id int) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, id int, cmd CreateEmployeeCommand) (*domain.Employee, error)
	Delete(ctx context.Context, id int) error
}

type MenuService interface {
	Create(ctx context.Context, cmd CreateMenuItemCommand) (*domain.MenuItem, error)
	Get(ctx context.Context, id int) (*domain.MenuItem, error)
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Update(ctx context.Context, id int, cmd CreateMenuItemCommand) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int) error
}

type WorkerStatusService interface {
	GetWorkersStatus(ctx context.Context) ([]*WorkerStatusResponse, error)
}

// Responses

type WorkerStatusResponse struct {
	WorkerName      string
	Status          domain.WorkerStatus
	OrdersProcessed int
	LastSeen        time.Time
}

type ItemSummary struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type OrderSummary struct {
	CustomerID   int           `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	ItemsOrdered []ItemSummary `json:"items_ordered"`
}

type DailySummary struct {
	Date        string         `json:"date"`
	Page        int            `json:"page"`
	PerPage     int            `json:"per_page"`
	TotalPages  int            `json:"total_pages"`
	TotalOrders int            `json:"total_orders"`
	Orders      []OrderSummary `json:"orders"`
}
