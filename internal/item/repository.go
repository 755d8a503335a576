package item

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("item not found")

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	FindByID(ctx context.Context, id string) (Item, error)
	FindByNameContaining(ctx context.Context, keyword string) ([]Item, error)
	FindByPriceLessThanEqual(ctx context.Context, price float64) ([]Item, error)
	Save(ctx context.Context, it Item) (Item, error)
	Delete(ctx context.Context, id string) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	items  map[string]Item
	nextID int
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	repo := &InMemoryRepository{items: make(map[string]Item, len(seed)), nextID: 1}
	for _, it := range seed {
		repo.items[it.ID] = it
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Item, error) {
	return r.filter(func(Item) bool { return true }), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (r *InMemoryRepository) FindByNameContaining(ctx context.Context, keyword string) ([]Item, error) {
	return r.filter(func(it Item) bool { return strings.Contains(it.Name, keyword) }), nil
}

func (r *InMemoryRepository) FindByPriceLessThanEqual(ctx context.Context, price float64) ([]Item, error) {
	return r.filter(func(it Item) bool { return it.Price <= price }), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, it Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for it.ID == "" {
		candidate := strconv.Itoa(r.nextID)
		r.nextID++
		if _, taken := r.items[candidate]; !taken {
			it.ID = candidate
		}
	}
	r.items[it.ID] = it
	return it, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) filter(keep func(Item) bool) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
