package interfaces

import (
	"context"
	"time"

	"github.com/askaruly/dastarhan/internal/domain"
)

// Repository interfaces (Adapter/Postgres)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int) error
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id int) (*domain.MenuItem, error)
	FindByName(ctx context.Context, name string) (*domain.MenuItem, error)
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
}

type OrderRepository interface {
	// Create persists the order and its items in one transaction.
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// Replace swaps the order's customer, status and full item set.
	Replace(ctx context.Context, order *domain.Order) error
	// Patch updates only the provided fields.
	Patch(ctx context.Context, id int, customerID *int, status *domain.Status) error
	Delete(ctx context.Context, id int) error
	DailySummary(ctx context.Context, day time.Time, page, perPage int) (*DailySummary, error)
}

// FulfillmentStore is the minimal store contract the scheduler depends on.
// CompareAndSetStatus is the only write: a single guarded UPDATE that succeeds
// iff the current status still equals expected.
type FulfillmentStore interface {
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	CompareAndSetStatus(ctx context.Context, id int, expected, next domain.Status) (bool, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	FindByName(ctx context.Context, name string) (*domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	UpdateHeartbeat(ctx context.Context, name string) error
	ListAll(ctx context.Context) ([]*domain.Worker, error)
	IncrementOrdersProcessed(ctx context.Context, name string) error
}
