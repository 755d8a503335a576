package employee

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
	return r.db.WithContext(ctx).Scopes(user.OfKind(user.KindEmployee))
}

func (r *GormRepository) List(ctx context.Context) ([]Employee, error) {
	return find(r.scoped(ctx))
}

func (r *GormRepository) FindByID(ctx context.Context, id int64) (Employee, error) {
	var e Employee
	if err := r.scoped(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Employee{}, ErrNotFound
		}
		return Employee{}, err
	}
	return e, nil
}

func (r *GormRepository) FindByUsernameContaining(ctx context.Context, keyword string) ([]Employee, error) {
	return find(r.scoped(ctx).Where("username LIKE ?", database.Contains(keyword)))
}

func (r *GormRepository) FindByPosition(ctx context.Context, position string) ([]Employee, error) {
	return find(r.scoped(ctx).Where("position = ?", position))
}

func (r *GormRepository) FindByShop(ctx context.Context, shopID int64) ([]Employee, error) {
	return find(r.scoped(ctx).Where("shop_id = ?", shopID))
}

func (r *GormRepository) Save(ctx context.Context, e Employee) (Employee, error) {
	e.Kind = user.KindEmployee
	if err := r.db.WithContext(ctx).Save(&e).Error; err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.scoped(ctx).Delete(&Employee{}, id).Error
}

func (r *GormRepository) DeleteByShop(ctx context.Context, shopID int64) error {
	return r.scoped(ctx).Where("shop_id = ?", shopID).Delete(&Employee{}).Error
}

func find(q *gorm.DB) ([]Employee, error) {
	employees := make([]Employee, 0)
	if err := q.Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
