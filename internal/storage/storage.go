package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/shared-ledger/internal/config"
	"github.com/carson-networks/shared-ledger/internal/storage/account"
	"github.com/carson-networks/shared-ledger/internal/storage/event"
	"github.com/carson-networks/shared-ledger/internal/storage/transfer"
)

// Tx is the transaction a Writer runs on. bob.Tx satisfies it.
type Tx interface {
	bob.Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Storage struct {
	DB        *sql.DB
	Accounts  account.IAccountReader
	Events    event.IEventReader
	Transfers transfer.ITransferReader

	db bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened database handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	bdb := bob.NewDB(db)
	reader := NewReader(bdb)
	return &Storage{
		DB:        db,
		Accounts:  reader.Accounts,
		Events:    reader.Events,
		Transfers: reader.Transfers,
		db:        bdb,
	}
}

// Write begins a transaction. The caller must Commit or Rollback the
// returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
