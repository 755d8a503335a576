package malladmin

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
	return r.db.WithContext(ctx).Scopes(user.OfKind(user.KindMallAdmin))
}

func (r *GormRepository) List(ctx context.Context) ([]MallAdmin, error) {
	return find(r.scoped(ctx))
}

func (r *GormRepository) FindByID(ctx context.Context, id int64) (MallAdmin, error) {
	var a MallAdmin
	if err := r.scoped(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MallAdmin{}, ErrNotFound
		}
		return MallAdmin{}, err
	}
	return a, nil
}

func (r *GormRepository) FindByRole(ctx context.Context, role string) ([]MallAdmin, error) {
	return find(r.scoped(ctx).Where("role = ?", role))
}

func (r *GormRepository) FindByUsernameContaining(ctx context.Context, keyword string) ([]MallAdmin, error) {
	return find(r.scoped(ctx).Where("username LIKE ?", database.Contains(keyword)))
}

func (r *GormRepository) FindByUsernameStartingWith(ctx context.Context, prefix string) ([]MallAdmin, error) {
	return find(r.scoped(ctx).Where("username LIKE ?", database.StartsWith(prefix)))
}

func (r *GormRepository) FindByUsernameEndingWith(ctx context.Context, suffix string) ([]MallAdmin, error) {
	return find(r.scoped(ctx).Where("username LIKE ?", database.EndsWith(suffix)))
}

func (r *GormRepository) FindByUsernameIgnoreCase(ctx context.Context, username string) ([]MallAdmin, error) {
	return find(r.scoped(ctx).Where("LOWER(username) = LOWER(?)", username))
}

func (r *GormRepository) Save(ctx context.Context, a MallAdmin) (MallAdmin, error) {
	a.Kind = user.KindMallAdmin
	if err := r.db.WithContext(ctx).Save(&a).Error; err != nil {
		return MallAdmin{}, err
	}
	return a, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.scoped(ctx).Delete(&MallAdmin{}, id).Error
}

func find(q *gorm.DB) ([]MallAdmin, error) {
	admins := make([]MallAdmin, 0)
	if err := q.Order("id").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}
