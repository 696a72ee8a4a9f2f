package domain

import (
	"errors"
	"time"
)

// Order represents a restaurant order entity.
type Order struct {
	ID         int
	CustomerID int
	Status     Status
	Items      []OrderItem
	CreatedAt  time.Time
}

// OrderItem is a line item referencing a menu item.
type OrderItem struct {
	ID         int
	OrderID    int
	MenuItemID int
	Quantity   int
}

// NewOrder creates a new order in the Pending state with business rules
// applied. An order with no items is allowed; its preparation wait is zero.
func NewOrder(customerID int, items []OrderItem) (*Order, error) {
	order := &Order{
		CustomerID: customerID,
		Status:     StatusPending,
		Items:      items,
		CreatedAt:  time.Now(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate applies business validation rules.
func (o *Order) Validate() error {
	if o.CustomerID < 1 {
		return errors.New("customer id is required")
	}

	for _, item := range o.Items {
		if item.MenuItemID < 1 {
			return errors.New("item menu_item_id is required")
		}
		if item.Quantity < 1 {
			return errors.New("item quantity must be positive")
		}
	}

	return nil
}

// CanTransitionTo checks whether the scheduler may move the order to the new
// status. Only the forward step from the current status is allowed.
func (o *Order) CanTransitionTo(newStatus Status) bool {
	next, ok := o.Status.Next()
	return ok && next == newStatus
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrPreconditionFailed = errors.New("order status precondition failed")
	ErrInvalidStatus      = errors.New("invalid order status")
)
