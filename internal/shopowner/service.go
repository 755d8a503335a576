package shopowner

import (
	"context"
	"fmt"

	"github.com/wichananm65/shopping-mall-backend/internal/cascade"
	"github.com/wichananm65/shopping-mall-backend/internal/user"
)

// ServiceInterface is what the shop and order packages need from owners.
type ServiceInterface interface {
	FindByID(ctx context.Context, id int64) (ShopOwner, error)
	Save(ctx context.Context, o ShopOwner) (ShopOwner, error)
}

type Service struct {
	repo    Repository
	cascade cascade.Store
}

func NewService(repo Repository, store cascade.Store) *Service {
	return &Service{repo: repo, cascade: store}
}

// List returns every shop owner; an empty table is an empty list.
func (s *Service) List(ctx context.Context) ([]ShopOwner, error) {
	return query(s.repo.List(ctx))
}

func (s *Service) FindByID(ctx context.Context, id int64) (ShopOwner, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByShopName(ctx context.Context, shopName string) ([]ShopOwner, error) {
	return query(s.repo.FindByShopName(ctx, shopName))
}

func (s *Service) FindByShopNameContaining(ctx context.Context, keyword string) ([]ShopOwner, error) {
	return query(s.repo.FindByShopNameContaining(ctx, keyword))
}

func (s *Service) FindByShopNameStartingWith(ctx context.Context, prefix string) ([]ShopOwner, error) {
	return query(s.repo.FindByShopNameStartingWith(ctx, prefix))
}

func (s *Service) FindByShopNameEndingWith(ctx context.Context, suffix string) ([]ShopOwner, error) {
	return query(s.repo.FindByShopNameEndingWith(ctx, suffix))
}

func (s *Service) FindByShopNameIgnoreCase(ctx context.Context, shopName string) ([]ShopOwner, error) {
	return query(s.repo.FindByShopNameIgnoreCase(ctx, shopName))
}

func (s *Service) Save(ctx context.Context, o ShopOwner) (ShopOwner, error) {
	o.Kind = user.KindShopOwner
	hashed, err := user.HashPassword(o.Password)
	if err != nil {
		return ShopOwner{}, fmt.Errorf("hash password: %w", err)
	}
	o.Password = hashed
	return s.repo.Save(ctx, o)
}

// Delete removes the owner together with its shops and their employees.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return cascade.DeleteShopOwner(ctx, s.cascade, id)
}

func query(owners []ShopOwner, err error) ([]ShopOwner, error) {
	if err != nil {
		return nil, fmt.Errorf("query shop owners: %w", err)
	}
	return owners, nil
}
