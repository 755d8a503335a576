package item

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns ErrNotFound when the store holds no items.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByNameContaining(ctx context.Context, keyword string) ([]Item, error) {
	return s.repo.FindByNameContaining(ctx, keyword)
}

// FindByPriceLessThanEqual returns items priced at or below price.
func (s *Service) FindByPriceLessThanEqual(ctx context.Context, price float64) ([]Item, error) {
	return s.repo.FindByPriceLessThanEqual(ctx, price)
}

func (s *Service) Save(ctx context.Context, it Item) (Item, error) {
	return s.repo.Save(ctx, it)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
