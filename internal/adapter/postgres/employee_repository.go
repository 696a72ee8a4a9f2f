package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type employeeRepository struct {
	db DB
}

func NewEmployeeRepository(db DB) interfaces.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	query := `
		INSERT INTO employees (name, role, email, phone, hire_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		employee.Name, employee.Role, employee.Email, employee.Phone, employee.HireDate,
	).Scan(&employee.ID)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	return r.findOne(ctx, `WHERE id = $1`, id, domain.ErrEmployeeNotFound)
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.findOne(ctx, `WHERE email = $1`, email, domain.ErrEmployeeNotFound)
}

func (r *employeeRepository) FindByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	return r.findOne(ctx, `WHERE phone = $1`, phone, domain.ErrEmployeeNotFound)
}

func (r *employeeRepository) findOne(ctx context.Context, where string, arg any, notFound error) (*domain.Employee, error) {
	query := `
		SELECT id, name, role, email, phone, hire_date
		FROM employees
	` + where

	var employee domain.Employee
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&employee.ID, &employee.Name, &employee.Role, &employee.Email, &employee.Phone, &employee.HireDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	query := `
		SELECT id, name, role, email, phone, hire_date
		FROM employees
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID, &employee.Name, &employee.Role, &employee.Email, &employee.Phone, &employee.HireDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, &employee)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, role = $2, email = $3, phone = $4, hire_date = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		employee.Name, employee.Role, employee.Email, employee.Phone, employee.HireDate, employee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
