package user

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByRole(ctx context.Context, role string) ([]User, error)
	FindByUsernameContaining(ctx context.Context, keyword string) ([]User, error)
	FindByUsernameStartingWith(ctx context.Context, prefix string) ([]User, error)
	FindByUsernameEndingWith(ctx context.Context, suffix string) ([]User, error)
	FindByUsernameIgnoreCase(ctx context.Context, username string) ([]User, error)
	Save(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id int64) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int64
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users:  make([]User, 0, len(seed)),
		nextID: 1,
	}
	for _, u := range seed {
		repo.users = append(repo.users, u)
		if u.ID >= repo.nextID {
			repo.nextID = u.ID + 1
		}
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]User, error) {
	return r.filter(func(User) bool { return true }), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	matches := r.filter(func(u User) bool { return u.Username == username })
	if len(matches) == 0 {
		return User{}, ErrNotFound
	}
	return matches[0], nil
}

func (r *InMemoryRepository) FindByRole(ctx context.Context, role string) ([]User, error) {
	return r.filter(func(u User) bool { return u.Role == role }), nil
}

func (r *InMemoryRepository) FindByUsernameContaining(ctx context.Context, keyword string) ([]User, error) {
	return r.filter(func(u User) bool { return strings.Contains(u.Username, keyword) }), nil
}

func (r *InMemoryRepository) FindByUsernameStartingWith(ctx context.Context, prefix string) ([]User, error) {
	return r.filter(func(u User) bool { return strings.HasPrefix(u.Username, prefix) }), nil
}

func (r *InMemoryRepository) FindByUsernameEndingWith(ctx context.Context, suffix string) ([]User, error) {
	return r.filter(func(u User) bool { return strings.HasSuffix(u.Username, suffix) }), nil
}

func (r *InMemoryRepository) FindByUsernameIgnoreCase(ctx context.Context, username string) ([]User, error) {
	return r.filter(func(u User) bool { return strings.EqualFold(u.Username, username) }), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.Kind == "" {
		u.Kind = KindUser
	}
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
		r.users = append(r.users, u)
		return u, nil
	}

	for i := range r.users {
		if r.users[i].ID == u.ID {
			u.Kind = r.users[i].Kind
			r.users[i] = u
			return u, nil
		}
	}
	r.users = append(r.users, u)
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	return u, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) filter(keep func(User) bool) []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0)
	for _, u := range r.users {
		if keep(u) {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
