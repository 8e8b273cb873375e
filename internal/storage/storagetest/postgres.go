// Package storagetest starts a throwaway PostgreSQL for integration tests.
package storagetest

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/session-ledger/internal/storage"
	"github.com/carson-networks/session-ledger/internal/storage/migrations"
)

const postgresImage = "postgres:16-alpine"

// NewStorage returns a Storage backed by a migrated PostgreSQL container.
// The test is skipped under -short.
func NewStorage(t *testing.T) *storage.Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("ledger"),
		postgres.WithUsername("ledger"),
		postgres.WithPassword("ledger"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, postMigrationVersion, err := migrations.Up(db)
	require.NoError(t, err)
	require.NotZero(t, postMigrationVersion)

	return storage.NewStorageFromDB(db)
}
