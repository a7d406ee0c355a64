// Package testutil runs repository tests against a disposable Postgres.
package testutil

import (
	"context"
	"flag"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/teamsched/scheduler-backend/internal/db"
)

const (
	image        = "postgres:17-alpine"
	dbName       = "scheduler"
	dbUser       = "test_scheduler"
	dbPassword   = "test_scheduler"
	snapshotName = "migrated"
)

var (
	container *postgres.PostgresContainer
	dsn       string
)

// RunWithPostgres starts a migrated Postgres container, runs the package's
// tests and terminates the container. With -short, or when no container
// runtime is reachable, tests run without it and Pool skips.
func RunWithPostgres(m *testing.M) int {
	flag.Parse()
	if testing.Short() {
		return m.Run()
	}

	ctx := context.Background()
	c, err := postgres.Run(
		ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Warnf("postgres container unavailable, skipping database tests: %v", err)
		return m.Run()
	}
	defer func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			log.Errorf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Errorf("failed to build connection string: %v", err)
		return 1
	}

	if err := db.Migrate(connStr, log.StandardLogger()); err != nil {
		log.Errorf("failed to apply migrations: %v", err)
		return 1
	}

	if err := c.Snapshot(ctx, postgres.WithSnapshotName(snapshotName)); err != nil {
		log.Errorf("failed to snapshot postgres container: %v", err)
		return 1
	}

	container, dsn = c, connStr
	return m.Run()
}

// Pool opens a pool on the migrated database. The schema is restored to its
// freshly migrated state when the test finishes.
func Pool(t *testing.T, opts ...db.PoolOption) *pgxpool.Pool {
	t.Helper()
	if container == nil {
		t.Skip("postgres is not available")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, dsn, opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		require.NoError(t, container.Restore(ctx, postgres.WithSnapshotName(snapshotName)))
	})
	return pool
}
