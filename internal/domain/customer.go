package domain

import (
	"errors"
	"strings"
	"time"
)

// Customer represents a restaurant customer entity.
type Customer struct {
	ID         int
	Name       string
	Email      *string
	Phone      *string
	JoinedDate time.Time
}

// NewCustomer creates a new customer with business rules applied.
func NewCustomer(name string, email, phone *string) (*Customer, error) {
	customer := &Customer{
		Name:       strings.TrimSpace(name),
		Email:      email,
		Phone:      phone,
		JoinedDate: time.Now(),
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate applies business validation rules.
func (c *Customer) Validate() error {
	if len(c.Name) < 1 || len(c.Name) > 100 {
		return errors.New("customer name must be 1-100 characters")
	}
	if c.Email != nil && len(*c.Email) > 120 {
		return errors.New("customer email must not exceed 120 characters")
	}
	if c.Phone != nil && len(*c.Phone) > 20 {
		return errors.New("customer phone must not exceed 20 characters")
	}
	return nil
}

var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrDuplicateCustomerEmail = errors.New("customer with this email already exists")
)
