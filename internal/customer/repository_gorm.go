package customer

import (
	"context"
	"errors"

	"github.com/wichananm65/shopping-mall-backend/internal/infrastructure/database"
	"github.com/wichananm65/shopping-mall-backend/internal/user"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) scoped(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(user.OfKind(user.KindCustomer))
}

func (r *GormRepository) List(ctx context.Context) ([]Customer, error) {
	return find(r.scoped(ctx))
}

func (r *GormRepository) FindByID(ctx context.Context, id int64) (Customer, error) {
	var c Customer
	if err := r.scoped(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	return c, nil
}

func (r *GormRepository) FindByPhoneNumberContaining(ctx context.Context, phone string) ([]Customer, error) {
	return find(r.scoped(ctx).Where("phone_number LIKE ?", database.Contains(phone)))
}

func (r *GormRepository) FindByAddressContaining(ctx context.Context, keyword string) ([]Customer, error) {
	return find(r.scoped(ctx).Where("address LIKE ?", database.Contains(keyword)))
}

func (r *GormRepository) FindByAddress(ctx context.Context, address string) ([]Customer, error) {
	return find(r.scoped(ctx).Where("address = ?", address))
}

func (r *GormRepository) FindByAddressIgnoreCase(ctx context.Context, address string) ([]Customer, error) {
	return find(r.scoped(ctx).Where("LOWER(address) = LOWER(?)", address))
}

func (r *GormRepository) Save(ctx context.Context, c Customer) (Customer, error) {
	c.Kind = user.KindCustomer
	if err := r.db.WithContext(ctx).Save(&c).Error; err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.scoped(ctx).Delete(&Customer{}, id).Error
}

func find(q *gorm.DB) ([]Customer, error) {
	customers := make([]Customer, 0)
	if err := q.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
