package order

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository stores order lines. Implementations persist only the foreign
// keys; the nested customer and owner are left nil.
type Repository interface {
	List(ctx context.Context) ([]OrderDetails, error)
	FindByID(ctx context.Context, id int64) (OrderDetails, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]OrderDetails, error)
	FindByShopOwner(ctx context.Context, ownerID int64) ([]OrderDetails, error)
	FindByProductNameContaining(ctx context.Context, keyword string) ([]OrderDetails, error)
	FindByProductName(ctx context.Context, name string) ([]OrderDetails, error)
	FindByProductNameIgnoreCase(ctx context.Context, name string) ([]OrderDetails, error)
	FindByQuantityAtLeast(ctx context.Context, min int) ([]OrderDetails, error)
	FindByPriceBetween(ctx context.Context, min, max float64) ([]OrderDetails, error)
	Save(ctx context.Context, o OrderDetails) (OrderDetails, error)
	Delete(ctx context.Context, id int64) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[int64]OrderDetails
	nextID int64
}

func NewInMemoryRepository(seed []OrderDetails) *InMemoryRepository {
	repo := &InMemoryRepository{orders: make(map[int64]OrderDetails), nextID: 1}
	for _, o := range seed {
		o.bindParties()
		if o.ID == 0 {
			o.ID = repo.nextID
		}
		repo.orders[o.ID] = o
		if o.ID >= repo.nextID {
			repo.nextID = o.ID + 1
		}
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]OrderDetails, error) {
	return r.filter(func(OrderDetails) bool { return true }), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (OrderDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return OrderDetails{}, ErrNotFound
	}
	return o, nil
}

func (r *InMemoryRepository) FindByCustomer(ctx context.Context, customerID int64) ([]OrderDetails, error) {
	return r.filter(func(o OrderDetails) bool { return o.CustomerID != nil && *o.CustomerID == customerID }), nil
}

func (r *InMemoryRepository) FindByShopOwner(ctx context.Context, ownerID int64) ([]OrderDetails, error) {
	return r.filter(func(o OrderDetails) bool { return o.ShopOwnerID != nil && *o.ShopOwnerID == ownerID }), nil
}

func (r *InMemoryRepository) FindByProductNameContaining(ctx context.Context, keyword string) ([]OrderDetails, error) {
	return r.filter(func(o OrderDetails) bool { return strings.Contains(o.ProductName, keyword) }), nil
}

func (r *InMemoryRepository) FindByProductName(ctx context.Context, name string) ([]OrderDetails, error) {
	return r.filter(func(o OrderDetails) bool { return o.ProductName == name }), nil
}

func (r *InMemoryRepository) FindByProductNameIgnoreCase(ctx context.Context, name string) ([]OrderDetails, error) {
	return r.filter(func(o OrderDetails) bool { return strings.EqualFold(o.ProductName, name) }), nil
}

func (r *InMemoryRepository) FindByQuantityAtLeast(ctx context.Context, min int) ([]OrderDetails, error) {
	return r.filter(func(o OrderDetails) bool { return o.Quantity >= min }), nil
}

func (r *InMemoryRepository) FindByPriceBetween(ctx context.Context, min, max float64) ([]OrderDetails, error) {
	return r.filter(func(o OrderDetails) bool { return o.Price >= min && o.Price <= max }), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, o OrderDetails) (OrderDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.Customer, o.ShopOwner = nil, nil
	if o.ID == 0 {
		o.ID = r.nextID
	}
	if o.ID >= r.nextID {
		r.nextID = o.ID + 1
	}
	r.orders[o.ID] = o
	return o, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.orders, id)
	return nil
}

func (r *InMemoryRepository) filter(keep func(OrderDetails) bool) []OrderDetails {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]OrderDetails, 0)
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
