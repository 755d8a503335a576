package shopowner

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
	return r.db.WithContext(ctx).Scopes(user.OfKind(user.KindShopOwner))
}

func (r *GormRepository) List(ctx context.Context) ([]ShopOwner, error) {
	return find(r.scoped(ctx))
}

func (r *GormRepository) FindByID(ctx context.Context, id int64) (ShopOwner, error) {
	var o ShopOwner
	if err := r.scoped(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShopOwner{}, ErrNotFound
		}
		return ShopOwner{}, err
	}
	return o, nil
}

func (r *GormRepository) FindByShopName(ctx context.Context, shopName string) ([]ShopOwner, error) {
	return find(r.scoped(ctx).Where("shop_name = ?", shopName))
}

func (r *GormRepository) FindByShopNameContaining(ctx context.Context, keyword string) ([]ShopOwner, error) {
	return find(r.scoped(ctx).Where("shop_name LIKE ?", database.Contains(keyword)))
}

func (r *GormRepository) FindByShopNameStartingWith(ctx context.Context, prefix string) ([]ShopOwner, error) {
	return find(r.scoped(ctx).Where("shop_name LIKE ?", database.StartsWith(prefix)))
}

func (r *GormRepository) FindByShopNameEndingWith(ctx context.Context, suffix string) ([]ShopOwner, error) {
	return find(r.scoped(ctx).Where("shop_name LIKE ?", database.EndsWith(suffix)))
}

func (r *GormRepository) FindByShopNameIgnoreCase(ctx context.Context, shopName string) ([]ShopOwner, error) {
	return find(r.scoped(ctx).Where("LOWER(shop_name) = LOWER(?)", shopName))
}

func (r *GormRepository) Save(ctx context.Context, o ShopOwner) (ShopOwner, error) {
	o.Kind = user.KindShopOwner
	if err := r.db.WithContext(ctx).Save(&o).Error; err != nil {
		return ShopOwner{}, err
	}
	return o, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.scoped(ctx).Delete(&ShopOwner{}, id).Error
}

func find(q *gorm.DB) ([]ShopOwner, error) {
	owners := make([]ShopOwner, 0)
	if err := q.Order("id").Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}
