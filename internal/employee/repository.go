package employee

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("employee not found")

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (Employee, error)
	FindByUsernameContaining(ctx context.Context, keyword string) ([]Employee, error)
	FindByPosition(ctx context.Context, position string) ([]Employee, error)
	FindByShop(ctx context.Context, shopID int64) ([]Employee, error)
	// Save expects ShopID to be already bound from the shop reference.
	Save(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
	DeleteByShop(ctx context.Context, shopID int64) error
}

type InMemoryRepository struct {
	mu        sync.RWMutex
	employees []Employee
	nextID    int64
}

func NewInMemoryRepository(seed []Employee) *InMemoryRepository {
	repo := &InMemoryRepository{nextID: 1}
	for _, e := range seed {
		repo.employees = append(repo.employees, e)
		if e.ID >= repo.nextID {
			repo.nextID = e.ID + 1
		}
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Employee, error) {
	return r.filter(func(Employee) bool { return true }), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (Employee, error) {
	matches := r.filter(func(e Employee) bool { return e.ID == id })
	if len(matches) == 0 {
		return Employee{}, ErrNotFound
	}
	return matches[0], nil
}

func (r *InMemoryRepository) FindByUsernameContaining(ctx context.Context, keyword string) ([]Employee, error) {
	return r.filter(func(e Employee) bool { return strings.Contains(e.Username, keyword) }), nil
}

func (r *InMemoryRepository) FindByPosition(ctx context.Context, position string) ([]Employee, error) {
	return r.filter(func(e Employee) bool { return e.Position == position }), nil
}

func (r *InMemoryRepository) FindByShop(ctx context.Context, shopID int64) ([]Employee, error) {
	return r.filter(func(e Employee) bool { return e.ShopID != nil && *e.ShopID == shopID }), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, e Employee) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == 0 {
		e.ID = r.nextID
	}
	for i := range r.employees {
		if r.employees[i].ID == e.ID {
			r.employees[i] = e
			return e, nil
		}
	}
	r.employees = append(r.employees, e)
	if e.ID >= r.nextID {
		r.nextID = e.ID + 1
	}
	return e, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(func(e Employee) bool { return e.ID == id })
	return nil
}

func (r *InMemoryRepository) DeleteByShop(ctx context.Context, shopID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(func(e Employee) bool { return e.ShopID != nil && *e.ShopID == shopID })
	return nil
}

// remove must be called with the write lock held.
func (r *InMemoryRepository) remove(match func(Employee) bool) {
	kept := r.employees[:0]
	for _, e := range r.employees {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	r.employees = kept
}

func (r *InMemoryRepository) filter(keep func(Employee) bool) []Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, 0)
	for _, e := range r.employees {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
