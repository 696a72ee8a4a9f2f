package employee

import (
	"context"
	"errors"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type Service struct {
	repo   interfaces.EmployeeRepository
	logger logger.Logger
}

func NewService(repo interfaces.EmployeeRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, logger: lgr}
}

func (s *Service) Create(ctx context.Context, cmd interfaces.CreateEmployeeCommand) (*domain.Employee, error) {
	employee, err := domain.NewEmployee(cmd.Name, cmd.Role, cmd.Email, cmd.Phone, cmd.HireDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueFields(ctx, employee, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		s.logger.Error("db_error", "Failed to create employee", "", nil, err)
		return nil, err
	}

	return employee, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int, cmd interfaces.CreateEmployeeCommand) (*domain.Employee, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.Name = cmd.Name
	employee.Role = cmd.Role
	employee.Email = cmd.Email
	employee.Phone = cmd.Phone
	employee.HireDate = cmd.HireDate
	if err := employee.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkUniqueFields(ctx, employee, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkUniqueFields(ctx context.Context, employee *domain.Employee, selfID int) error {
	existing, err := s.repo.FindByEmail(ctx, employee.Email)
	if err == nil && existing.ID != selfID {
		return domain.ErrDuplicateEmployeeEmail
	}
	if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	}

	if employee.Phone != nil {
		existing, err = s.repo.FindByPhone(ctx, *employee.Phone)
		if err == nil && existing.ID != selfID {
			return domain.ErrDuplicateEmployeePhone
		}
		if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
			return err
		}
	}

	return nil
}
