// Package pgtest opens migrated Postgres pools for store tests.
//
// Tests are opt-in: they run only when TEST_DB_URI points at a reachable
// database. Each call gets its own schema, dropped when the test ends.
package pgtest

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/infra"
)

// EnvURI names the variable holding the test database connection string.
const EnvURI = "TEST_DB_URI"

// Open returns a pool whose search_path is a fresh schema with all
// migrations applied. It skips the test when EnvURI is unset or the
// database cannot be reached.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	raw := strings.TrimSpace(os.Getenv(EnvURI))
	if raw == "" {
		t.Skipf("postgres store test skipped: %s is not set", EnvURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := infra.NewPostgresPool(ctx, raw)
	if err != nil {
		t.Skipf("postgres store test skipped: %v", err)
	}

	schema := "taskapi_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ident := pgx.Identifier{schema}.Sanitize()
	if _, err := admin.Exec(ctx, `CREATE SCHEMA `+ident); err != nil {
		admin.Close()
		t.Fatalf("create schema: %v", err)
	}

	cfg, err := pgxpool.ParseConfig(raw)
	if err != nil {
		admin.Close()
		t.Fatalf("parse %s: %v", EnvURI, err)
	}
	cfg.ConnConfig.RuntimeParams["search_path"] = schema

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		admin.Close()
		t.Fatalf("connect postgres: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		_, _ = admin.Exec(dropCtx, `DROP SCHEMA IF EXISTS `+ident+` CASCADE`)
		admin.Close()
	})

	if err := infra.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}
