package task

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Task
}

// NewMemoryRepository constructs an in-memory repository for tests and local runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Task)}
}

func (r *memoryRepository) Create(_ context.Context, task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[task.ID]; exists {
		return ErrInvalidInput
	}
	r.storage[task.ID] = task
	return nil
}

func (r *memoryRepository) Get(_ context.Context, ownerID, id string) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.storage[id]
	if !ok || task.UserID != ownerID {
		return Task{}, ErrNotFound
	}
	return task, nil
}

func (r *memoryRepository) ListByOwner(_ context.Context, ownerID string, status Status) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := []Task{}
	for _, task := range r.storage {
		if task.UserID != ownerID || (status != "" && task.Status != status) {
			continue
		}
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *memoryRepository) Update(_ context.Context, task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.storage[task.ID]
	if !ok || existing.UserID != task.UserID {
		return ErrNotFound
	}
	r.storage[task.ID] = task
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.storage[id]
	if !ok || task.UserID != ownerID {
		return ErrNotFound
	}
	delete(r.storage, id)
	return nil
}
