package domain

import (
	"errors"
	"strings"
	"time"
)

// Employee represents a restaurant employee entity.
type Employee struct {
	ID       int
	Name     string
	Role     string
	Email    string
	Phone    *string
	HireDate time.Time
}

// NewEmployee creates a new employee with business rules applied.
func NewEmployee(name, role, email string, phone *string, hireDate time.Time) (*Employee, error) {
	employee := &Employee{
		Name:     strings.TrimSpace(name),
		Role:     strings.TrimSpace(role),
		Email:    strings.TrimSpace(email),
		Phone:    phone,
		HireDate: hireDate,
	}

	if err := employee.Validate(); err != nil {
		return nil, err
	}

	return employee, nil
}

// Validate applies business validation rules.
func (e *Employee) Validate() error {
	if len(e.Name) < 1 || len(e.Name) > 100 {
		return errors.New("employee name must be 1-100 characters")
	}
	if len(e.Role) < 1 || len(e.Role) > 50 {
		return errors.New("employee role must be 1-50 characters")
	}
	if len(e.Email) < 1 || len(e.Email) > 120 {
		return errors.New("employee email must be 1-120 characters")
	}
	if e.Phone != nil && len(*e.Phone) > 20 {
		return errors.New("employee phone must not exceed 20 characters")
	}
	if e.HireDate.IsZero() {
		return errors.New("employee hire date is required")
	}
	return nil
}

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrDuplicateEmployeeEmail = errors.New("employee with this email already exists")
	ErrDuplicateEmployeePhone = errors.New("employee with this phone already exists")
)
