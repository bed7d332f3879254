package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists tasks. Every lookup is scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, task Task) error
	Get(ctx context.Context, ownerID, id string) (Task, error)
	ListByOwner(ctx context.Context, ownerID string, status Status) ([]Task, error)
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, ownerID, id string) error
}

// PostgresRepository stores tasks in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const taskColumns = `id, user_id, title, description, status, due_date, created_at, updated_at`

// Create inserts a task record.
func (r *PostgresRepository) Create(ctx context.Context, task Task) error {
	taskID, ownerID, err := parseIDs(task.ID, task.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO tasks (`+taskColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		taskID, ownerID, task.Title, task.Description, string(task.Status), utcPtr(task.DueDate), task.CreatedAt.UTC(), task.UpdatedAt.UTC())
	return err
}

// Get fetches one task of ownerID.
func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (Task, error) {
	taskID, owner, err := parseIDs(id, ownerID)
	if err != nil {
		return Task{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`, taskID, owner)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	return t, err
}

// ListByOwner returns the tasks of ownerID oldest first, optionally filtered by status.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, status Status) ([]Task, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return []Task{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+taskColumns+` FROM tasks
        WHERE user_id = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at, id`, owner, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update overwrites the mutable fields of a task.
func (r *PostgresRepository) Update(ctx context.Context, task Task) error {
	taskID, owner, err := parseIDs(task.ID, task.UserID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE tasks SET title = $1, description = $2, status = $3, due_date = $4, updated_at = $5
        WHERE id = $6 AND user_id = $7`,
		task.Title, task.Description, string(task.Status), utcPtr(task.DueDate), task.UpdatedAt.UTC(), taskID, owner)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one task of ownerID.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	taskID, owner, err := parseIDs(id, ownerID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, owner)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (Task, error) {
	var (
		t       Task
		id      uuid.UUID
		ownerID uuid.UUID
		status  string
		due     *time.Time
	)
	if err := row.Scan(&id, &ownerID, &t.Title, &t.Description, &status, &due, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return Task{}, err
	}
	t.ID = id.String()
	t.UserID = ownerID.String()
	t.Status = Status(status)
	t.DueDate = utcPtr(due)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func parseIDs(id, ownerID string) (uuid.UUID, uuid.UUID, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return taskID, owner, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
