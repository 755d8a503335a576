package customer

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/wichananm65/shopping-mall-backend/internal/user"
)

var ErrNotFound = errors.New("customer not found")

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id int64) (Customer, error)
	FindByPhoneNumberContaining(ctx context.Context, phone string) ([]Customer, error)
	FindByAddressContaining(ctx context.Context, keyword string) ([]Customer, error)
	FindByAddress(ctx context.Context, address string) ([]Customer, error)
	FindByAddressIgnoreCase(ctx context.Context, address string) ([]Customer, error)
	Save(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, id int64) error
}

type InMemoryRepository struct {
	mu        sync.RWMutex
	customers []Customer
	nextID    int64
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	repo := &InMemoryRepository{nextID: 1}
	for _, c := range seed {
		c.Kind = user.KindCustomer
		repo.customers = append(repo.customers, c)
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Customer, error) {
	return r.filter(func(Customer) bool { return true }), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (Customer, error) {
	matches := r.filter(func(c Customer) bool { return c.ID == id })
	if len(matches) == 0 {
		return Customer{}, ErrNotFound
	}
	return matches[0], nil
}

func (r *InMemoryRepository) FindByPhoneNumberContaining(ctx context.Context, phone string) ([]Customer, error) {
	return r.filter(func(c Customer) bool { return strings.Contains(c.PhoneNumber, phone) }), nil
}

func (r *InMemoryRepository) FindByAddressContaining(ctx context.Context, keyword string) ([]Customer, error) {
	return r.filter(func(c Customer) bool { return strings.Contains(c.Address, keyword) }), nil
}

func (r *InMemoryRepository) FindByAddress(ctx context.Context, address string) ([]Customer, error) {
	return r.filter(func(c Customer) bool { return c.Address == address }), nil
}

func (r *InMemoryRepository) FindByAddressIgnoreCase(ctx context.Context, address string) ([]Customer, error) {
	return r.filter(func(c Customer) bool { return strings.EqualFold(c.Address, address) }), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.Kind = user.KindCustomer
	if c.ID == 0 {
		c.ID = r.nextID
	}
	for i := range r.customers {
		if r.customers[i].ID == c.ID {
			r.customers[i] = c
			return c, nil
		}
	}
	r.customers = append(r.customers, c)
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	return c, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryRepository) filter(keep func(Customer) bool) []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Customer, 0)
	for _, c := range r.customers {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
