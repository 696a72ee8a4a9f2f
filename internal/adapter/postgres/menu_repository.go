package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type menuItemRepository struct {
	db DB
}

func NewMenuItemRepository(db DB) interfaces.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, price, category, preparation_time_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.PreparationTimeMinutes,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *menuItemRepository) FindByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	return r.findOne(ctx, `WHERE name = $1`, name)
}

func (r *menuItemRepository) findOne(ctx context.Context, where string, arg any) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, preparation_time_minutes
		FROM menu_items
	` + where

	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.PreparationTimeMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	return &item, nil
}

func (r *menuItemRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, preparation_time_minutes
		FROM menu_items
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.PreparationTimeMinutes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, preparation_time_minutes = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.PreparationTimeMinutes, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}
