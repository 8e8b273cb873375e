package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/session-ledger/internal/config"
	"github.com/carson-networks/session-ledger/internal/storage/sqlconfig"
)

type Storage struct {
	SQL          *sql.DB
	DB           bob.DB
	Transactions sqlconfig.ITransactionTable
}

// NewStorage opens the connection pool. sql.Open does not dial, so an
// unreachable database surfaces on first use or Ping.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened pool.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		SQL:          db,
		DB:           bobDB,
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
	}
}

// Write begins a database transaction. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.SQL.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.SQL.Close()
}
