package shop

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

func (r *GormRepository) List(ctx context.Context) ([]Shop, error) {
	return find(r.db.WithContext(ctx))
}

func (r *GormRepository) FindByID(ctx context.Context, id int64) (Shop, error) {
	var s Shop
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Shop{}, ErrNotFound
		}
		return Shop{}, err
	}
	return s, nil
}

func (r *GormRepository) FindByNameContaining(ctx context.Context, keyword string) ([]Shop, error) {
	return find(r.db.WithContext(ctx).Where("name LIKE ?", database.Contains(keyword)))
}

func (r *GormRepository) FindByLocation(ctx context.Context, location string) ([]Shop, error) {
	return find(r.db.WithContext(ctx).Where("location = ?", location))
}

func (r *GormRepository) FindByCategory(ctx context.Context, category string) ([]Shop, error) {
	return find(r.db.WithContext(ctx).Where("category = ?", category))
}

func (r *GormRepository) FindByOwner(ctx context.Context, ownerID int64) ([]Shop, error) {
	return find(r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *GormRepository) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&Shop{}).Where("owner_id = ?", ownerID).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *GormRepository) Save(ctx context.Context, s Shop) (Shop, error) {
	s = strip(s)
	if err := r.db.WithContext(ctx).Save(&s).Error; err != nil {
		return Shop{}, err
	}
	return s, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Shop{}, id).Error
}

func find(q *gorm.DB) ([]Shop, error) {
	shops := make([]Shop, 0)
	if err := q.Order("id").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}
