package shop

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("shop not found")

// Repository persists the shop row only; Employees and ShopOwner are
// ignored on save and left empty on load.
type Repository interface {
	List(ctx context.Context) ([]Shop, error)
	FindByID(ctx context.Context, id int64) (Shop, error)
	FindByNameContaining(ctx context.Context, keyword string) ([]Shop, error)
	FindByLocation(ctx context.Context, location string) ([]Shop, error)
	FindByCategory(ctx context.Context, category string) ([]Shop, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]Shop, error)
	IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	Save(ctx context.Context, s Shop) (Shop, error)
	Delete(ctx context.Context, id int64) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	shops  map[int64]Shop
	nextID int64
}

func NewInMemoryRepository(seed []Shop) *InMemoryRepository {
	repo := &InMemoryRepository{shops: make(map[int64]Shop, len(seed)), nextID: 1}
	for _, s := range seed {
		repo.shops[s.ID] = strip(s)
		if s.ID >= repo.nextID {
			repo.nextID = s.ID + 1
		}
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Shop, error) {
	return r.filter(func(Shop) bool { return true }), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shops[id]
	if !ok {
		return Shop{}, ErrNotFound
	}
	return s, nil
}

func (r *InMemoryRepository) FindByNameContaining(ctx context.Context, keyword string) ([]Shop, error) {
	return r.filter(func(s Shop) bool { return strings.Contains(s.Name, keyword) }), nil
}

func (r *InMemoryRepository) FindByLocation(ctx context.Context, location string) ([]Shop, error) {
	return r.filter(func(s Shop) bool { return s.Location == location }), nil
}

func (r *InMemoryRepository) FindByCategory(ctx context.Context, category string) ([]Shop, error) {
	return r.filter(func(s Shop) bool { return s.Category == category }), nil
}

func (r *InMemoryRepository) FindByOwner(ctx context.Context, ownerID int64) ([]Shop, error) {
	return r.filter(func(s Shop) bool { return s.OwnerID != nil && *s.OwnerID == ownerID }), nil
}

func (r *InMemoryRepository) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	shops, _ := r.FindByOwner(ctx, ownerID)
	ids := make([]int64, 0, len(shops))
	for _, s := range shops {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, s Shop) (Shop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s = strip(s)
	if s.ID == 0 {
		s.ID = r.nextID
	}
	if s.ID >= r.nextID {
		r.nextID = s.ID + 1
	}
	r.shops[s.ID] = s
	return s, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.shops, id)
	return nil
}

func (r *InMemoryRepository) filter(keep func(Shop) bool) []Shop {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Shop, 0)
	for _, s := range r.shops {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func strip(s Shop) Shop {
	s.Employees = nil
	s.ShopOwner = nil
	return s
}
