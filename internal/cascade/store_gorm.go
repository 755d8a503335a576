package cascade

import (
	"context"

	"gorm.io/gorm"
)

const (
	usersTable = "users"
	shopsTable = "shops"
)

// GormStore runs cascades as raw table deletes inside one transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) ShopIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := s.db.WithContext(ctx).Table(shopsTable).Where("owner_id = ?", ownerID).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) DeleteEmployeesOfShop(ctx context.Context, shopID int64) error {
	return s.db.WithContext(ctx).Exec("DELETE FROM "+usersTable+" WHERE user_type = ? AND shop_id = ?", "EMPLOYEE", shopID).Error
}

func (s *GormStore) DeleteShop(ctx context.Context, shopID int64) error {
	return s.db.WithContext(ctx).Exec("DELETE FROM "+shopsTable+" WHERE id = ?", shopID).Error
}

func (s *GormStore) DeleteShopOwner(ctx context.Context, ownerID int64) error {
	return s.db.WithContext(ctx).Exec("DELETE FROM "+usersTable+" WHERE user_type = ? AND id = ?", "SHOP_OWNER", ownerID).Error
}
