package domain

import (
	"errors"
	"strings"
)

// MenuItem represents a dish on the menu. PreparationTimeMinutes drives the
// second-stage wait of the fulfillment pipeline.
type MenuItem struct {
	ID                     int
	Name                   string
	Description            *string
	Price                  float64
	Category               string
	PreparationTimeMinutes int
}

// NewMenuItem creates a new menu item with business rules applied.
func NewMenuItem(name string, description *string, price float64, category string, prepTimeMinutes int) (*MenuItem, error) {
	item := &MenuItem{
		Name:                   strings.TrimSpace(name),
		Description:            description,
		Price:                  price,
		Category:               strings.TrimSpace(category),
		PreparationTimeMinutes: prepTimeMinutes,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate applies business validation rules.
func (m *MenuItem) Validate() error {
	if len(m.Name) < 1 || len(m.Name) > 100 {
		return errors.New("menu item name must be 1-100 characters")
	}
	if len(m.Category) < 1 || len(m.Category) > 50 {
		return errors.New("menu item category must be 1-50 characters")
	}
	if m.Price <= 0 {
		return errors.New("menu item price must be greater than 0")
	}
	if m.PreparationTimeMinutes <= 0 {
		return errors.New("menu item preparation time must be greater than 0")
	}
	return nil
}

var (
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrDuplicateMenuItemName = errors.New("menu item with this name already exists")
)
