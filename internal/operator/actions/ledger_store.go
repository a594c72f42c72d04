package actions

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/storage"
	"github.com/carson-networks/shared-ledger/internal/storage/account"
	"github.com/carson-networks/shared-ledger/internal/storage/event"
	"github.com/carson-networks/shared-ledger/internal/storage/transfer"
)

// ledgerStore lets a ledger.Builder read and write through the
// transaction of the running action.
type ledgerStore struct {
	writer *storage.Writer
}

var (
	_ ledger.AccountRepository = ledgerStore{}
	_ ledger.EventRecorder     = ledgerStore{}
)

// FindAccount share-locks the account so it cannot be deleted while the
// event is being written.
func (s ledgerStore) FindAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	row, err := s.writer.Accounts.FindByIDForShare(ctx, id)
	if errors.Is(err, account.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Ledger(), nil
}

func (s ledgerStore) ListAccounts(ctx context.Context) ([]*ledger.Account, error) {
	rows, err := s.writer.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]*ledger.Account, len(rows))
	for i, row := range rows {
		accounts[i] = row.Ledger()
	}
	return accounts, nil
}

func (s ledgerStore) RecordEvent(ctx context.Context, e *ledger.Event) error {
	details := null.Val[string]{}
	if e.Type == ledger.EventTypePurchase {
		details = null.From(e.Details)
	}

	// timestamptz keeps microseconds.
	e.CreatedAt = e.CreatedAt.Truncate(time.Microsecond)
	err := s.writer.Events.Insert(ctx, &event.EventCreate{
		ID:        e.ID,
		Date:      e.Date,
		EventType: string(e.Type),
		Details:   details,
		CreatedAt: e.CreatedAt,
	})
	if err != nil {
		return err
	}

	creates := make([]*transfer.TransferCreate, len(e.Transfers))
	for i, t := range e.Transfers {
		creates[i] = &transfer.TransferCreate{
			ID:          t.ID,
			AccountID:   t.Account.ID,
			EventID:     e.ID,
			AmountCents: t.AmountCents,
		}
	}
	return s.writer.Transfers.InsertMany(ctx, creates)
}
