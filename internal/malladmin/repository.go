package malladmin

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("mall admin not found")

type Repository interface {
	List(ctx context.Context) ([]MallAdmin, error)
	FindByID(ctx context.Context, id int64) (MallAdmin, error)
	FindByRole(ctx context.Context, role string) ([]MallAdmin, error)
	FindByUsernameContaining(ctx context.Context, keyword string) ([]MallAdmin, error)
	FindByUsernameStartingWith(ctx context.Context, prefix string) ([]MallAdmin, error)
	FindByUsernameEndingWith(ctx context.Context, suffix string) ([]MallAdmin, error)
	FindByUsernameIgnoreCase(ctx context.Context, username string) ([]MallAdmin, error)
	Save(ctx context.Context, a MallAdmin) (MallAdmin, error)
	Delete(ctx context.Context, id int64) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	admins map[int64]MallAdmin
	nextID int64
}

func NewInMemoryRepository(seed []MallAdmin) *InMemoryRepository {
	repo := &InMemoryRepository{admins: make(map[int64]MallAdmin, len(seed)), nextID: 1}
	for _, a := range seed {
		repo.admins[a.ID] = a
		if a.ID >= repo.nextID {
			repo.nextID = a.ID + 1
		}
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]MallAdmin, error) {
	return r.filter(func(MallAdmin) bool { return true }), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (MallAdmin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[id]
	if !ok {
		return MallAdmin{}, ErrNotFound
	}
	return a, nil
}

func (r *InMemoryRepository) FindByRole(ctx context.Context, role string) ([]MallAdmin, error) {
	return r.filter(func(a MallAdmin) bool { return a.Role == role }), nil
}

func (r *InMemoryRepository) FindByUsernameContaining(ctx context.Context, keyword string) ([]MallAdmin, error) {
	return r.filter(func(a MallAdmin) bool { return strings.Contains(a.Username, keyword) }), nil
}

func (r *InMemoryRepository) FindByUsernameStartingWith(ctx context.Context, prefix string) ([]MallAdmin, error) {
	return r.filter(func(a MallAdmin) bool { return strings.HasPrefix(a.Username, prefix) }), nil
}

func (r *InMemoryRepository) FindByUsernameEndingWith(ctx context.Context, suffix string) ([]MallAdmin, error) {
	return r.filter(func(a MallAdmin) bool { return strings.HasSuffix(a.Username, suffix) }), nil
}

func (r *InMemoryRepository) FindByUsernameIgnoreCase(ctx context.Context, username string) ([]MallAdmin, error) {
	return r.filter(func(a MallAdmin) bool { return strings.EqualFold(a.Username, username) }), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, a MallAdmin) (MallAdmin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == 0 {
		a.ID = r.nextID
	}
	if a.ID >= r.nextID {
		r.nextID = a.ID + 1
	}
	r.admins[a.ID] = a
	return a, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.admins, id)
	return nil
}

func (r *InMemoryRepository) filter(keep func(MallAdmin) bool) []MallAdmin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]MallAdmin, 0)
	for _, a := range r.admins {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
