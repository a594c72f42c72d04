package transfer

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Transfer represents a transfer record.
type Transfer struct {
	ID          uuid.UUID `db:"id"`
	AccountID   uuid.UUID `db:"account_id"`
	EventID     uuid.UUID `db:"event_id"`
	AmountCents int64     `db:"amount_cents"`
	CreatedAt   time.Time `db:"created_at"`
}

// TransferCreate is the input for creating a transfer.
type TransferCreate struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	EventID     uuid.UUID
	AmountCents int64
}

// TransferFilter specifies filters for listing transfers. Unset fields do
// not filter.
type TransferFilter struct {
	AccountID omit.Val[uuid.UUID]
	EventIDs  []uuid.UUID
}

// ITransferReader defines the read-only transfer storage operations.
type ITransferReader interface {
	List(ctx context.Context, filter *TransferFilter) ([]*Transfer, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

var transferColumns = []any{"id", "account_id", "event_id", "amount_cents", "created_at"}
