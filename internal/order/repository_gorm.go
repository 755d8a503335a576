package order

import (
	"context"
	"errors"

	"github.com/wichananm65/shopping-mall-backend/internal/infrastructure/database"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]OrderDetails, error) {
	return find(r.db.WithContext(ctx))
}

func (r *GormRepository) FindByID(ctx context.Context, id int64) (OrderDetails, error) {
	var o OrderDetails
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDetails{}, ErrNotFound
		}
		return OrderDetails{}, err
	}
	return o, nil
}

func (r *GormRepository) FindByCustomer(ctx context.Context, customerID int64) ([]OrderDetails, error) {
	return find(r.db.WithContext(ctx).Where("customer_id = ?", customerID))
}

func (r *GormRepository) FindByShopOwner(ctx context.Context, ownerID int64) ([]OrderDetails, error) {
	return find(r.db.WithContext(ctx).Where("shop_owner_id = ?", ownerID))
}

func (r *GormRepository) FindByProductNameContaining(ctx context.Context, keyword string) ([]OrderDetails, error) {
	return find(r.db.WithContext(ctx).Where("product_name LIKE ?", database.Contains(keyword)))
}

func (r *GormRepository) FindByProductName(ctx context.Context, name string) ([]OrderDetails, error) {
	return find(r.db.WithContext(ctx).Where("product_name = ?", name))
}

func (r *GormRepository) FindByProductNameIgnoreCase(ctx context.Context, name string) ([]OrderDetails, error) {
	return find(r.db.WithContext(ctx).Where("LOWER(product_name) = LOWER(?)", name))
}

func (r *GormRepository) FindByQuantityAtLeast(ctx context.Context, min int) ([]OrderDetails, error) {
	return find(r.db.WithContext(ctx).Where("quantity >= ?", min))
}

func (r *GormRepository) FindByPriceBetween(ctx context.Context, min, max float64) ([]OrderDetails, error) {
	return find(r.db.WithContext(ctx).Where("price BETWEEN ? AND ?", min, max))
}

func (r *GormRepository) Save(ctx context.Context, o OrderDetails) (OrderDetails, error) {
	o.Customer, o.ShopOwner = nil, nil
	if err := r.db.WithContext(ctx).Save(&o).Error; err != nil {
		return OrderDetails{}, err
	}
	return o, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&OrderDetails{}, id).Error
}

func find(q *gorm.DB) ([]OrderDetails, error) {
	orders := make([]OrderDetails, 0)
	if err := q.Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
