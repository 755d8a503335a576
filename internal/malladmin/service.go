package malladmin

import (
	"context"
	"fmt"

	"github.com/wichananm65/shopping-mall-backend/internal/user"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]MallAdmin, error) {
	return present(s.repo.List(ctx))
}

func (s *Service) FindByID(ctx context.Context, id int64) (MallAdmin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByRole(ctx context.Context, role string) ([]MallAdmin, error) {
	return present(s.repo.FindByRole(ctx, role))
}

func (s *Service) FindByUsernameContaining(ctx context.Context, keyword string) ([]MallAdmin, error) {
	return present(s.repo.FindByUsernameContaining(ctx, keyword))
}

func (s *Service) FindByUsernameStartingWith(ctx context.Context, prefix string) ([]MallAdmin, error) {
	return present(s.repo.FindByUsernameStartingWith(ctx, prefix))
}

func (s *Service) FindByUsernameEndingWith(ctx context.Context, suffix string) ([]MallAdmin, error) {
	return present(s.repo.FindByUsernameEndingWith(ctx, suffix))
}

func (s *Service) FindByUsernameIgnoreCase(ctx context.Context, username string) ([]MallAdmin, error) {
	return present(s.repo.FindByUsernameIgnoreCase(ctx, username))
}

func (s *Service) Save(ctx context.Context, a MallAdmin) (MallAdmin, error) {
	a.Kind = user.KindMallAdmin
	hashed, err := user.HashPassword(a.Password)
	if err != nil {
		return MallAdmin{}, fmt.Errorf("hash password: %w", err)
	}
	a.Password = hashed
	return s.repo.Save(ctx, a)
}

// Delete removes the admin with the given id, or returns ErrNotFound when
// there is none.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func present(admins []MallAdmin, err error) ([]MallAdmin, error) {
	if err != nil {
		return nil, fmt.Errorf("query mall admins: %w", err)
	}
	if len(admins) == 0 {
		return nil, ErrNotFound
	}
	return admins, nil
}
