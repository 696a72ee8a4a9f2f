package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *orderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (customer_id, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query, order.CustomerID, order.Status, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		itemQuery := `
			INSERT INTO order_items (order_id, menu_item_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		err = tx.QueryRow(ctx, itemQuery,
			order.ID, order.Items[i].MenuItemID, order.Items[i].Quantity,
		).Scan(&order.Items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
		order.Items[i].OrderID = order.ID
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, status, created_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.CustomerID, &order.Status, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if err := r.loadItems(ctx, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	query := `
		SELECT id, customer_id, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.Status, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}
	rows.Close()

	for _, order := range orders {
		if err := r.loadItems(ctx, order); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	itemsQuery := `SELECT id, order_id, menu_item_id, quantity FROM order_items WHERE order_id = $1`
	rows, err := r.db.Query(ctx, itemsQuery, order.ID)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	return nil
}

func (r *orderRepository) Replace(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE orders
		SET customer_id = $1, status = $2
		WHERE id = $3
	`
	tag, err := tx.Exec(ctx, query, order.CustomerID, order.Status, order.ID)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	for i := range order.Items {
		itemQuery := `
			INSERT INTO order_items (order_id, menu_item_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		err = tx.QueryRow(ctx, itemQuery,
			order.ID, order.Items[i].MenuItemID, order.Items[i].Quantity,
		).Scan(&order.Items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
		order.Items[i].OrderID = order.ID
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) Patch(ctx context.Context, id int, customerID *int, status *domain.Status) error {
	query := `
		UPDATE orders
		SET customer_id = COALESCE($1, customer_id),
		    status = COALESCE($2, status)
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, customerID, status, id)
	if err != nil {
		return fmt.Errorf("failed to patch order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return tx.Commit(ctx)
}

// --- FulfillmentStore contract ---

func (r *orderRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return r.GetByID(ctx, id)
}

// CompareAndSetStatus performs the guarded status write: a single UPDATE that
// applies only while the current status still equals expected. A concurrent
// delete or an out-of-band status edit simply makes it report false.
func (r *orderRepository) CompareAndSetStatus(ctx context.Context, id int, expected, next domain.Status) (bool, error) {
	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, next, id, expected)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *orderRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, preparation_time_minutes
		FROM menu_items
		WHERE id = $1
	`

	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
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

// --- Daily summary ---

func (r *orderRepository) DailySummary(ctx context.Context, day time.Time, page, perPage int) (*interfaces.DailySummary, error) {
	dateStr := day.Format("2006-01-02")

	var total int
	countQuery := `SELECT COUNT(*) FROM orders WHERE DATE(created_at) = $1`
	if err := r.db.QueryRow(ctx, countQuery, dateStr).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	totalPages := (total + perPage - 1) / perPage
	offset := (page - 1) * perPage

	query := `
		SELECT o.id, c.id, c.name
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE DATE(o.created_at) = $1
		ORDER BY o.created_at DESC
		OFFSET $2 LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, dateStr, offset, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary orders: %w", err)
	}
	defer rows.Close()

	type summaryRow struct {
		orderID int
		summary interfaces.OrderSummary
	}
	var summaries []summaryRow
	for rows.Next() {
		var s summaryRow
		if err := rows.Scan(&s.orderID, &s.summary.CustomerID, &s.summary.CustomerName); err != nil {
			return nil, fmt.Errorf("failed to scan summary order: %w", err)
		}
		summaries = append(summaries, s)
	}
	rows.Close()

	itemQuery := `
		SELECT m.name, oi.quantity, m.price
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id = $1
	`
	result := &interfaces.DailySummary{
		Date:        dateStr,
		Page:        page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		TotalOrders: total,
		Orders:      []interfaces.OrderSummary{},
	}
	for _, s := range summaries {
		itemRows, err := r.db.Query(ctx, itemQuery, s.orderID)
		if err != nil {
			return nil, fmt.Errorf("failed to query summary items: %w", err)
		}
		for itemRows.Next() {
			var item interfaces.ItemSummary
			if err := itemRows.Scan(&item.Name, &item.Quantity, &item.Price); err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("failed to scan summary item: %w", err)
			}
			item.Total = float64(item.Quantity) * item.Price
			s.summary.ItemsOrdered = append(s.summary.ItemsOrdered, item)
		}
		itemRows.Close()
		result.Orders = append(result.Orders, s.summary)
	}

	return result, nil
}
