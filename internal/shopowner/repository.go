package shopowner

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("shop owner not found")

type Repository interface {
	List(ctx context.Context) ([]ShopOwner, error)
	FindByID(ctx context.Context, id int64) (ShopOwner, error)
	FindByShopName(ctx context.Context, shopName string) ([]ShopOwner, error)
	FindByShopNameContaining(ctx context.Context, keyword string) ([]ShopOwner, error)
	FindByShopNameStartingWith(ctx context.Context, prefix string) ([]ShopOwner, error)
	FindByShopNameEndingWith(ctx context.Context, suffix string) ([]ShopOwner, error)
	FindByShopNameIgnoreCase(ctx context.Context, shopName string) ([]ShopOwner, error)
	Save(ctx context.Context, o ShopOwner) (ShopOwner, error)
	Delete(ctx context.Context, id int64) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	owners map[int64]ShopOwner
	nextID int64
}

func NewInMemoryRepository(seed []ShopOwner) *InMemoryRepository {
	repo := &InMemoryRepository{owners: make(map[int64]ShopOwner, len(seed)), nextID: 1}
	for _, o := range seed {
		repo.owners[o.ID] = o
		if o.ID >= repo.nextID {
			repo.nextID = o.ID + 1
		}
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]ShopOwner, error) {
	return r.filter(func(ShopOwner) bool { return true }), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (ShopOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.owners[id]
	if !ok {
		return ShopOwner{}, ErrNotFound
	}
	return o, nil
}

func (r *InMemoryRepository) FindByShopName(ctx context.Context, shopName string) ([]ShopOwner, error) {
	return r.filter(func(o ShopOwner) bool { return o.ShopName == shopName }), nil
}

func (r *InMemoryRepository) FindByShopNameContaining(ctx context.Context, keyword string) ([]ShopOwner, error) {
	return r.filter(func(o ShopOwner) bool { return strings.Contains(o.ShopName, keyword) }), nil
}

func (r *InMemoryRepository) FindByShopNameStartingWith(ctx context.Context, prefix string) ([]ShopOwner, error) {
	return r.filter(func(o ShopOwner) bool { return strings.HasPrefix(o.ShopName, prefix) }), nil
}

func (r *InMemoryRepository) FindByShopNameEndingWith(ctx context.Context, suffix string) ([]ShopOwner, error) {
	return r.filter(func(o ShopOwner) bool { return strings.HasSuffix(o.ShopName, suffix) }), nil
}

func (r *InMemoryRepository) FindByShopNameIgnoreCase(ctx context.Context, shopName string) ([]ShopOwner, error) {
	return r.filter(func(o ShopOwner) bool { return strings.EqualFold(o.ShopName, shopName) }), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, o ShopOwner) (ShopOwner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == 0 {
		o.ID = r.nextID
	}
	if o.ID >= r.nextID {
		r.nextID = o.ID + 1
	}
	r.owners[o.ID] = o
	return o, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.owners, id)
	return nil
}

func (r *InMemoryRepository) filter(keep func(ShopOwner) bool) []ShopOwner {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ShopOwner, 0)
	for _, o := range r.owners {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
