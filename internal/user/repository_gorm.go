package user

import (
	"context"
	"errors"

	"github.com/wichananm65/shopping-mall-backend/internal/infrastructure/database"
	"gorm.io/gorm"
)

// GormRepository sees every row of the users table regardless of subtype.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]User, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormRepository) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *GormRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("username = ?", username).Order("id").First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *GormRepository) FindByRole(ctx context.Context, role string) ([]User, error) {
	return r.find(r.db.WithContext(ctx).Where("role = ?", role))
}

func (r *GormRepository) FindByUsernameContaining(ctx context.Context, keyword string) ([]User, error) {
	return r.find(r.db.WithContext(ctx).Where("username LIKE ?", database.Contains(keyword)))
}

func (r *GormRepository) FindByUsernameStartingWith(ctx context.Context, prefix string) ([]User, error) {
	return r.find(r.db.WithContext(ctx).Where("username LIKE ?", database.StartsWith(prefix)))
}

func (r *GormRepository) FindByUsernameEndingWith(ctx context.Context, suffix string) ([]User, error) {
	return r.find(r.db.WithContext(ctx).Where("username LIKE ?", database.EndsWith(suffix)))
}

func (r *GormRepository) FindByUsernameIgnoreCase(ctx context.Context, username string) ([]User, error) {
	return r.find(r.db.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username))
}

// Save upserts u by id. The discriminant is left untouched on update so a
// subtype row saved through this repository keeps its type.
func (r *GormRepository) Save(ctx context.Context, u User) (User, error) {
	tx := r.db.WithContext(ctx)
	if u.ID != 0 {
		tx = tx.Omit("user_type")
	} else {
		u.Kind = KindUser
	}
	if err := tx.Save(&u).Error; err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&User{}, id).Error
}

func (r *GormRepository) find(q *gorm.DB) ([]User, error) {
	users := make([]User, 0)
	if err := q.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
