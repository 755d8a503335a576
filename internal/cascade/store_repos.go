package cascade

import "context"

type EmployeeDeleter interface {
	DeleteByShop(ctx context.Context, shopID int64) error
}

type ShopDeleter interface {
	IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	Delete(ctx context.Context, id int64) error
}

type OwnerDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// RepoStore composes resource repositories into a Store. It has no
// transaction of its own and is meant for the in-memory repositories.
type RepoStore struct {
	Employees EmployeeDeleter
	Shops     ShopDeleter
	Owners    OwnerDeleter
}

func (s *RepoStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return fn(s)
}

func (s *RepoStore) ShopIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	return s.Shops.IDsByOwner(ctx, ownerID)
}

func (s *RepoStore) DeleteEmployeesOfShop(ctx context.Context, shopID int64) error {
	return s.Employees.DeleteByShop(ctx, shopID)
}

func (s *RepoStore) DeleteShop(ctx context.Context, shopID int64) error {
	return s.Shops.Delete(ctx, shopID)
}

func (s *RepoStore) DeleteShopOwner(ctx context.Context, ownerID int64) error {
	return s.Owners.Delete(ctx, ownerID)
}
