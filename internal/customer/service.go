package customer

import (
	"context"
	"fmt"

	"github.com/wichananm65/shopping-mall-backend/internal/user"
)

// ServiceInterface is what the order package needs from customers.
type ServiceInterface interface {
	FindByID(ctx context.Context, id int64) (Customer, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return present(s.repo.List(ctx))
}

func (s *Service) FindByID(ctx context.Context, id int64) (Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByPhoneNumberContaining(ctx context.Context, phone string) ([]Customer, error) {
	return present(s.repo.FindByPhoneNumberContaining(ctx, phone))
}

func (s *Service) FindByAddressContaining(ctx context.Context, keyword string) ([]Customer, error) {
	return present(s.repo.FindByAddressContaining(ctx, keyword))
}

func (s *Service) FindByAddress(ctx context.Context, address string) ([]Customer, error) {
	return present(s.repo.FindByAddress(ctx, address))
}

func (s *Service) FindByAddressIgnoreCase(ctx context.Context, address string) ([]Customer, error) {
	return present(s.repo.FindByAddressIgnoreCase(ctx, address))
}

func (s *Service) Save(ctx context.Context, c Customer) (Customer, error) {
	hashed, err := user.HashPassword(c.Password)
	if err != nil {
		return Customer{}, fmt.Errorf("hash password: %w", err)
	}
	c.Password = hashed
	return s.repo.Save(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// present turns an empty result into ErrNotFound.
func present(customers []Customer, err error) ([]Customer, error) {
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	if len(customers) == 0 {
		return nil, ErrNotFound
	}
	return customers, nil
}
