package employee

import (
	"context"
	"fmt"

	"github.com/wichananm65/shopping-mall-backend/internal/user"
)

// ServiceInterface is what the shop package needs to save and load the
// employees of a shop.
type ServiceInterface interface {
	Save(ctx context.Context, e Employee) (Employee, error)
	FindByShop(ctx context.Context, shopID int64) ([]Employee, error)
}

// ShopLookup reports whether a shop exists. It is implemented by the shop
// service and keeps this package free of a shop import.
type ShopLookup interface {
	ShopExists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return present(s.repo.List(ctx))
}

func (s *Service) FindByID(ctx context.Context, id int64) (Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByNameContaining(ctx context.Context, keyword string) ([]Employee, error) {
	return present(s.repo.FindByUsernameContaining(ctx, keyword))
}

func (s *Service) FindByPosition(ctx context.Context, position string) ([]Employee, error) {
	return present(s.repo.FindByPosition(ctx, position))
}

func (s *Service) FindByShop(ctx context.Context, shopID int64) ([]Employee, error) {
	return present(s.repo.FindByShop(ctx, shopID))
}

func (s *Service) Save(ctx context.Context, e Employee) (Employee, error) {
	e.bindShop()
	hashed, err := user.HashPassword(e.Password)
	if err != nil {
		return Employee{}, fmt.Errorf("hash password: %w", err)
	}
	e.Password = hashed
	return s.repo.Save(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func present(employees []Employee, err error) ([]Employee, error) {
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	if len(employees) == 0 {
		return nil, ErrNotFound
	}
	return employees, nil
}
