package account

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/ledger"
)

var (
	ErrNotFound  = errors.New("account not found")
	ErrNameTaken = errors.New("account name already taken")
)

// Account represents an account record.
type Account struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Ledger returns the account as a ledger member with no transfers posted.
func (a *Account) Ledger() *ledger.Account {
	return &ledger.Account{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	ID   uuid.UUID
	Name string
}

// IAccountReader defines the read-only account storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IAccountReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByName(ctx context.Context, name string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
}

var accountColumns = []any{"id", "name", "created_at"}
