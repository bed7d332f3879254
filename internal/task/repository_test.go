package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/infra/pgtest"
)

// forEachStore runs fn against the in-memory store and, when TEST_DB_URI is
// set, against the Postgres store. newOwner returns an id that may own tasks.
func forEachStore(t *testing.T, fn func(t *testing.T, repo Repository, newOwner func() string)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryRepository(), uuid.NewString)
	})
	t.Run("postgres", func(t *testing.T) {
		pool := pgtest.Open(t)
		fn(t, NewPostgresRepository(pool), func() string { return insertOwner(t, pool) })
	})
}

func insertOwner(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(), `INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		id, "user-"+id.String(), id.String()+"@x.com", []byte("hash"))
	if err != nil {
		t.Fatalf("insert owner: %v", err)
	}
	return id.String()
}

func storedTask(owner, title string, status Status, created time.Time) Task {
	return Task{
		ID:        uuid.NewString(),
		UserID:    owner,
		Title:     title,
		Status:    status,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestRepositoryListFiltersAndOrders(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo Repository, newOwner func() string) {
		ctx := context.Background()
		owner, other := newOwner(), newOwner()
		base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

		for i, tk := range []Task{
			storedTask(owner, "second", StatusCompleted, base.Add(2*time.Minute)),
			storedTask(owner, "first", StatusPending, base.Add(time.Minute)),
			storedTask(other, "foreign", StatusPending, base),
		} {
			if err := repo.Create(ctx, tk); err != nil {
				t.Fatalf("create %d: %v", i, err)
			}
		}

		all, err := repo.ListByOwner(ctx, owner, "")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 2 || all[0].Title != "first" || all[1].Title != "second" {
			t.Fatalf("expected owner's tasks oldest first, got %+v", all)
		}

		done, err := repo.ListByOwner(ctx, owner, StatusCompleted)
		if err != nil {
			t.Fatalf("list completed: %v", err)
		}
		if len(done) != 1 || done[0].Title != "second" {
			t.Fatalf("expected only the completed task, got %+v", done)
		}

		none, err := repo.ListByOwner(ctx, newOwner(), "")
		if err != nil {
			t.Fatalf("list empty: %v", err)
		}
		if none == nil || len(none) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", none)
		}
	})
}

func TestRepositoryScopesByOwner(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo Repository, newOwner func() string) {
		ctx := context.Background()
		owner, intruder := newOwner(), newOwner()
		due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

		tk := storedTask(owner, "mine", StatusPending, time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
		tk.DueDate = &due
		if err := repo.Create(ctx, tk); err != nil {
			t.Fatalf("create: %v", err)
		}

		got, err := repo.Get(ctx, owner, tk.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Fatalf("expected due date %v, got %v", due, got.DueDate)
		}

		if _, err := repo.Get(ctx, intruder, tk.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found for another owner, got %v", err)
		}
		if _, err := repo.Get(ctx, owner, "not-a-uuid"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found for malformed id, got %v", err)
		}

		hijack := got
		hijack.UserID = intruder
		hijack.Title = "stolen"
		if err := repo.Update(ctx, hijack); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found updating another owner's task, got %v", err)
		}
		if err := repo.Delete(ctx, intruder, tk.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found deleting another owner's task, got %v", err)
		}

		got.Title = "renamed"
		got.DueDate = nil
		if err := repo.Update(ctx, got); err != nil {
			t.Fatalf("update: %v", err)
		}
		reloaded, err := repo.Get(ctx, owner, tk.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if reloaded.Title != "renamed" || reloaded.DueDate != nil {
			t.Fatalf("update not persisted: %+v", reloaded)
		}

		if err := repo.Delete(ctx, owner, tk.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.Get(ctx, owner, tk.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found after delete, got %v", err)
		}
	})
}
