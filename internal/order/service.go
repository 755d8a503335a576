package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/wichananm65/shopping-mall-backend/internal/customer"
	"github.com/wichananm65/shopping-mall-backend/internal/shopowner"
)

type Service struct {
	repo      Repository
	customers customer.ServiceInterface
	owners    shopowner.ServiceInterface
}

func NewService(repo Repository, customers customer.ServiceInterface, owners shopowner.ServiceInterface) *Service {
	return &Service{repo: repo, customers: customers, owners: owners}
}

func (s *Service) List(ctx context.Context) ([]OrderDetails, error) {
	return s.present(ctx)(s.repo.List(ctx))
}

func (s *Service) FindByID(ctx context.Context, id int64) (OrderDetails, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OrderDetails{}, err
	}
	if err := s.hydrate(ctx, &o); err != nil {
		return OrderDetails{}, err
	}
	return o, nil
}

func (s *Service) FindByCustomer(ctx context.Context, customerID int64) ([]OrderDetails, error) {
	return s.present(ctx)(s.repo.FindByCustomer(ctx, customerID))
}

func (s *Service) FindByShopOwner(ctx context.Context, ownerID int64) ([]OrderDetails, error) {
	return s.present(ctx)(s.repo.FindByShopOwner(ctx, ownerID))
}

func (s *Service) FindByProductNameContaining(ctx context.Context, keyword string) ([]OrderDetails, error) {
	return s.present(ctx)(s.repo.FindByProductNameContaining(ctx, keyword))
}

func (s *Service) FindByProductName(ctx context.Context, name string) ([]OrderDetails, error) {
	return s.present(ctx)(s.repo.FindByProductName(ctx, name))
}

func (s *Service) FindByProductNameIgnoreCase(ctx context.Context, name string) ([]OrderDetails, error) {
	return s.present(ctx)(s.repo.FindByProductNameIgnoreCase(ctx, name))
}

func (s *Service) FindByQuantityAtLeast(ctx context.Context, min int) ([]OrderDetails, error) {
	return s.present(ctx)(s.repo.FindByQuantityAtLeast(ctx, min))
}

// FindByPriceBetween matches prices in [min, max].
func (s *Service) FindByPriceBetween(ctx context.Context, min, max float64) ([]OrderDetails, error) {
	return s.present(ctx)(s.repo.FindByPriceBetween(ctx, min, max))
}

// Save stores the order against the ids of its nested customer and owner.
// Neither party is created or updated here.
func (s *Service) Save(ctx context.Context, o OrderDetails) (OrderDetails, error) {
	o.bindParties()
	saved, err := s.repo.Save(ctx, o)
	if err != nil {
		return OrderDetails{}, fmt.Errorf("save order: %w", err)
	}
	if err := s.hydrate(ctx, &saved); err != nil {
		return OrderDetails{}, err
	}
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// present hydrates a query result, turning an empty one into ErrNotFound.
func (s *Service) present(ctx context.Context) func([]OrderDetails, error) ([]OrderDetails, error) {
	return func(orders []OrderDetails, err error) ([]OrderDetails, error) {
		if err != nil {
			return nil, fmt.Errorf("query orders: %w", err)
		}
		if len(orders) == 0 {
			return nil, ErrNotFound
		}
		for i := range orders {
			if err := s.hydrate(ctx, &orders[i]); err != nil {
				return nil, err
			}
		}
		return orders, nil
	}
}

// hydrate loads the referenced customer and owner. A dangling reference
// leaves the field nil.
func (s *Service) hydrate(ctx context.Context, o *OrderDetails) error {
	if o.CustomerID != nil {
		c, err := s.customers.FindByID(ctx, *o.CustomerID)
		switch {
		case err == nil:
			o.Customer = &c
		case !errors.Is(err, customer.ErrNotFound):
			return fmt.Errorf("load customer of order %d: %w", o.ID, err)
		}
	}
	if o.ShopOwnerID != nil {
		owner, err := s.owners.FindByID(ctx, *o.ShopOwnerID)
		switch {
		case err == nil:
			o.ShopOwner = &owner
		case !errors.Is(err, shopowner.ErrNotFound):
			return fmt.Errorf("load shop owner of order %d: %w", o.ID, err)
		}
	}
	return nil
}
