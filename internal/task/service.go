package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/notification"
)

// Service implements task CRUD for a single owner at a time.
type Service struct {
	repo     Repository
	notifier notification.Notifier
	now      func() time.Time
}

// NewService builds a task service. notifier may be nil.
func NewService(repo Repository, notifier notification.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: func() time.Time { return time.Now().UTC() }}
}

// Create stores a new task for ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, input CreateInput) (Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	status := input.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return Task{}, fmt.Errorf("%w: status must be pending or completed", ErrInvalidInput)
	}

	now := s.now()
	task := Task{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Title:       title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// List returns the owner's tasks, optionally only those with status.
func (s *Service) List(ctx context.Context, ownerID string, status Status) ([]Task, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.repo.ListByOwner(ctx, ownerID, status)
}

// Get retrieves one of the owner's tasks.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Task, error) {
	return s.repo.Get(ctx, ownerID, id)
}

// Update applies a partial update. Moving a task to completed notifies the owner.
func (s *Service) Update(ctx context.Context, ownerID, id string, input UpdateInput) (Task, error) {
	task, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return Task{}, err
	}
	previous := task.Status

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return Task{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return Task{}, fmt.Errorf("%w: status must be pending or completed", ErrInvalidInput)
		}
		task.Status = *input.Status
	}
	switch {
	case input.ClearDueDate:
		task.DueDate = nil
	case input.DueDate != nil:
		task.DueDate = input.DueDate
	}
	task.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, task); err != nil {
		return Task{}, err
	}

	if s.notifier != nil && previous != StatusCompleted && task.Status == StatusCompleted {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:   notification.KindTaskCompleted,
			UserID: ownerID,
			TaskID: task.ID,
			Body:   fmt.Sprintf("Task %q completed", task.Title),
		})
	}

	return task, nil
}

// Delete removes one of the owner's tasks.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
