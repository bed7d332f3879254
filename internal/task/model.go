package task

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

var (
	// ErrNotFound is returned for unknown tasks and for tasks owned by someone else.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidInput wraps validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// Task is a unit of work owned by one user.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      Status
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateInput captures data required to create a task.
type CreateInput struct {
	Title       string
	Description string
	Status      Status
	DueDate     *time.Time
}

// UpdateInput holds a partial update; nil fields are left unchanged.
// ClearDueDate removes the due date and takes precedence over DueDate.
type UpdateInput struct {
	Title        *string
	Description  *string
	Status       *Status
	DueDate      *time.Time
	ClearDueDate bool
}
