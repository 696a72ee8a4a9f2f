package menu

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/askaruly/dastarhan/internal/adapter/cache"
	"github.com/askaruly/dastarhan/internal/adapter/logger"
	"github.com/askaruly/dastarhan/internal/domain"
	"github.com/askaruly/dastarhan/internal/interfaces"
)

const cacheTTL = 5 * time.Minute

// Service manages the menu. Reads go through a best-effort redis cache when
// one is configured; cache failures fall back to the store and are only
// logged. Orders are never cached, only menu items.
type Service struct {
	repo   interfaces.MenuItemRepository
	cache  cache.Cache
	logger logger.Logger
}

func NewService(repo interfaces.MenuItemRepository, c cache.Cache, lgr logger.Logger) *Service {
	return &Service{repo: repo, cache: c, logger: lgr}
}

func (s *Service) Create(ctx context.Context, cmd interfaces.CreateMenuItemCommand) (*domain.MenuItem, error) {
	item, err := domain.NewMenuItem(cmd.Name, cmd.Description, cmd.Price, cmd.Category, cmd.PreparationTimeMinutes)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueName(ctx, item.Name, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("db_error", "Failed to create menu item", "", nil, err)
		return nil, err
	}

	return item, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	if item := s.cachedGet(ctx, id); item != nil {
		return item, nil
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cachePut(ctx, item)
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int, cmd interfaces.CreateMenuItemCommand) (*domain.MenuItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = cmd.Name
	item.Description = cmd.Description
	item.Price = cmd.Price
	item.Category = cmd.Category
	item.PreparationTimeMinutes = cmd.PreparationTimeMinutes
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkUniqueName(ctx, item.Name, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, id)
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cacheInvalidate(ctx, id)
	return nil
}

func (s *Service) checkUniqueName(ctx context.Context, name string, selfID int) error {
	existing, err := s.repo.FindByName(ctx, name)
	if errors.Is(err, domain.ErrMenuItemNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return domain.ErrDuplicateMenuItemName
	}
	return nil
}

func (s *Service) cachedGet(ctx context.Context, id int) *domain.MenuItem {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, s.cache.GenerateKey("menu_item", id))
	if err != nil {
		s.logger.Debug("cache_error", "Menu cache read failed", "", map[string]interface{}{"error": err.Error()})
		return nil
	}
	if raw == "" {
		return nil
	}

	var item domain.MenuItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil
	}
	return &item
}

func (s *Service) cachePut(ctx context.Context, item *domain.MenuItem) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(item)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.GenerateKey("menu_item", item.ID), string(raw), cacheTTL); err != nil {
		s.logger.Debug("cache_error", "Menu cache write failed", "", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Service) cacheInvalidate(ctx context.Context, id int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cache.GenerateKey("menu_item", id)); err != nil {
		s.logger.Debug("cache_error", "Menu cache invalidation failed", "", map[string]interface{}{"error": err.Error()})
	}
}
