package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/wichananm65/shopping-mall-backend/internal/cascade"
	"github.com/wichananm65/shopping-mall-backend/internal/employee"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
)

type Service struct {
	repo      Repository
	owners    shopowner.ServiceInterface
	employees employee.ServiceInterface
	cascade   cascade.Store
}

func NewService(repo Repository, owners shopowner.ServiceInterface, employees employee.ServiceInterface, store cascade.Store) *Service {
	return &Service{repo: repo, owners: owners, employees: employees, cascade: store}
}

func (s *Service) List(ctx context.Context) ([]Shop, error) {
	return s.present(ctx)(s.repo.List(ctx))
}

func (s *Service) FindByID(ctx context.Context, id int64) (Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Shop{}, err
	}
	if err := s.hydrate(ctx, &shop); err != nil {
		return Shop{}, err
	}
	return shop, nil
}

// ShopExists lets the employee handler check a shop id without importing
// this package.
func (s *Service) ShopExists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) FindByNameContaining(ctx context.Context, keyword string) ([]Shop, error) {
	return s.present(ctx)(s.repo.FindByNameContaining(ctx, keyword))
}

func (s *Service) FindByLocation(ctx context.Context, location string) ([]Shop, error) {
	return s.present(ctx)(s.repo.FindByLocation(ctx, location))
}

func (s *Service) FindByCategory(ctx context.Context, category string) ([]Shop, error) {
	return s.present(ctx)(s.repo.FindByCategory(ctx, category))
}

func (s *Service) FindByShopOwner(ctx context.Context, ownerID int64) ([]Shop, error) {
	return s.present(ctx)(s.repo.FindByOwner(ctx, ownerID))
}

// Save upserts the embedded owner, then the shop, then assigns every
// embedded employee to the saved shop.
func (s *Service) Save(ctx context.Context, shop Shop) (Shop, error) {
	var owner *shopowner.ShopOwner
	shop.OwnerID = nil
	if shop.ShopOwner != nil {
		saved, err := s.owners.Save(ctx, *shop.ShopOwner)
		if err != nil {
			return Shop{}, fmt.Errorf("save shop owner: %w", err)
		}
		owner = &saved
		shop.OwnerID = &saved.ID
	}

	incoming := shop.Employees
	saved, err := s.repo.Save(ctx, shop)
	if err != nil {
		return Shop{}, fmt.Errorf("save shop: %w", err)
	}

	saved.ShopOwner = owner
	saved.Employees = make([]employee.Employee, 0, len(incoming))
	for _, e := range incoming {
		e.Shop = &employee.ShopRef{ID: saved.ID}
		se, err := s.employees.Save(ctx, e)
		if err != nil {
			return Shop{}, fmt.Errorf("save employee of shop %d: %w", saved.ID, err)
		}
		saved.Employees = append(saved.Employees, se)
	}
	return saved, nil
}

// Delete removes the shop and its employees.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return cascade.DeleteShop(ctx, s.cascade, id)
}

// present hydrates a query result, turning an empty one into ErrNotFound.
func (s *Service) present(ctx context.Context) func([]Shop, error) ([]Shop, error) {
	return func(shops []Shop, err error) ([]Shop, error) {
		if err != nil {
			return nil, fmt.Errorf("query shops: %w", err)
		}
		if len(shops) == 0 {
			return nil, ErrNotFound
		}
		for i := range shops {
			if err := s.hydrate(ctx, &shops[i]); err != nil {
				return nil, err
			}
		}
		return shops, nil
	}
}

func (s *Service) hydrate(ctx context.Context, shop *Shop) error {
	if shop.OwnerID != nil {
		owner, err := s.owners.FindByID(ctx, *shop.OwnerID)
		switch {
		case err == nil:
			shop.ShopOwner = &owner
		case !errors.Is(err, shopowner.ErrNotFound):
			return fmt.Errorf("load owner of shop %d: %w", shop.ID, err)
		}
	}

	employees, err := s.employees.FindByShop(ctx, shop.ID)
	switch {
	case err == nil:
		shop.Employees = employees
	case errors.Is(err, employee.ErrNotFound):
		shop.Employees = []employee.Employee{}
	default:
		return fmt.Errorf("load employees of shop %d: %w", shop.ID, err)
	}
	return nil
}
