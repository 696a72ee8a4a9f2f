package customer

import (
	"context"
	"errors"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

type Service struct {
	repo   interfaces.CustomerRepository
	logger logger.Logger
}

func NewService(repo interfaces.CustomerRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, logger: lgr}
}

func (s *Service) Create(ctx context.Context, cmd interfaces.CreateCustomerCommand) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(cmd.Name, cmd.Email, cmd.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueEmail(ctx, customer.Email, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		s.logger.Error("db_error", "Failed to create customer", "", nil, err)
		return nil, err
	}

	return customer, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int, cmd interfaces.CreateCustomerCommand) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = cmd.Name
	customer.Email = cmd.Email
	customer.Phone = cmd.Phone
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkUniqueEmail(ctx, customer.Email, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkUniqueEmail(ctx context.Context, email *string, selfID int) error {
	if email == nil {
		return nil
	}

	existing, err := s.repo.FindByEmail(ctx, *email)
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return domain.ErrDuplicateCustomerEmail
	}
	return nil
}
