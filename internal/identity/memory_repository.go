package identity

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository builds an in-memory user store for tests and local runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Create(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.ID == user.ID || existing.Email == user.Email || existing.Username == user.Username {
			return ErrUserExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	return r.find(func(u User) bool { return u.Email == email })
}

func (r *memoryRepository) FindByUsername(_ context.Context, username string) (User, error) {
	return r.find(func(u User) bool { return u.Username == username })
}

func (r *memoryRepository) DeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, user := range r.users {
		if user.Email == email {
			delete(r.users, id)
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *memoryRepository) find(match func(User) bool) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if match(user) {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}
