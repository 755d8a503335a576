package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/wichananm65/shopping-mall-backend/internal/cascade"
)

// ServiceInterface is the slice of the user service other packages depend on.
type ServiceInterface interface {
	FindByID(ctx context.Context, id int64) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
}

type Service struct {
	repo    Repository
	cascade cascade.Store
}

func NewService(repo Repository, store cascade.Store) *Service {
	return &Service{repo: repo, cascade: store}
}

// List returns ErrNotFound when there are no users at all.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *Service) FindByRole(ctx context.Context, role string) ([]User, error) {
	return s.repo.FindByRole(ctx, role)
}

func (s *Service) FindByUsernameContaining(ctx context.Context, keyword string) ([]User, error) {
	return s.repo.FindByUsernameContaining(ctx, keyword)
}

func (s *Service) FindByUsernameStartingWith(ctx context.Context, prefix string) ([]User, error) {
	return s.repo.FindByUsernameStartingWith(ctx, prefix)
}

func (s *Service) FindByUsernameEndingWith(ctx context.Context, suffix string) ([]User, error) {
	return s.repo.FindByUsernameEndingWith(ctx, suffix)
}

func (s *Service) FindByUsernameIgnoreCase(ctx context.Context, username string) ([]User, error) {
	return s.repo.FindByUsernameIgnoreCase(ctx, username)
}

func (s *Service) Save(ctx context.Context, u User) (User, error) {
	hashed, err := HashPassword(u.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	u.Password = hashed
	return s.repo.Save(ctx, u)
}

// Delete removes the row whatever its subtype. Shop owners go through the
// owner cascade so their shops and employees are removed with them.
func (s *Service) Delete(ctx context.Context, id int64) error {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find user %d: %w", id, err)
	}
	if u.Kind == KindShopOwner {
		return cascade.DeleteShopOwner(ctx, s.cascade, id)
	}
	return s.repo.Delete(ctx, id)
}
