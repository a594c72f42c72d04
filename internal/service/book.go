package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/money"
	"github.com/carson-networks/shared-ledger/internal/storage"
	"github.com/carson-networks/shared-ledger/internal/storage/event"
	"github.com/carson-networks/shared-ledger/internal/storage/transfer"
)

// loadBook links every account with the given events and all of their
// transfers. Transfers are read before accounts: an account that owns a
// transfer cannot be deleted, so every referenced account is still listed.
func loadBook(ctx context.Context, store *storage.Storage, eventRows []*event.Event) (*ledger.Book, []*ledger.Event, error) {
	events := make([]*ledger.Event, len(eventRows))
	ids := make([]uuid.UUID, len(eventRows))
	for i, row := range eventRows {
		events[i] = toLedgerEvent(row)
		ids[i] = row.ID
	}

	var transfers []*transfer.Transfer
	if len(ids) > 0 {
		var err error
		transfers, err = store.Transfers.List(ctx, &transfer.TransferFilter{EventIDs: ids})
		if err != nil {
			return nil, nil, fmt.Errorf("list transfers: %w", err)
		}
	}

	accounts, err := listLedgerAccounts(ctx, store)
	if err != nil {
		return nil, nil, err
	}
	book := ledger.NewBook(accounts, events)
	if err := post(book, transfers); err != nil {
		return nil, nil, err
	}
	return book, events, nil
}

func listLedgerAccounts(ctx context.Context, store *storage.Storage) ([]*ledger.Account, error) {
	rows, err := store.Accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	accounts := make([]*ledger.Account, len(rows))
	for i, row := range rows {
		accounts[i] = row.Ledger()
	}
	return accounts, nil
}

func post(book *ledger.Book, transfers []*transfer.Transfer) error {
	for _, t := range transfers {
		if _, err := book.Post(t.ID, t.AccountID, t.EventID, t.AmountCents); err != nil {
			return err
		}
	}
	return nil
}

func toLedgerEvent(row *event.Event) *ledger.Event {
	return &ledger.Event{
		ID:        row.ID,
		Date:      row.Date,
		Type:      ledger.EventType(row.EventType),
		Details:   row.Details.GetOrZero(),
		CreatedAt: row.CreatedAt,
	}
}

func toAccount(a *ledger.Account, f money.Formatter) Account {
	balance := a.BalanceCents()
	return Account{
		ID:           a.ID,
		Name:         a.Name,
		CreatedAt:    a.CreatedAt,
		BalanceCents: balance,
		Balance:      f.Format(balance),
		Summary:      a.Summary(f),
	}
}

func toEvent(e *ledger.Event, f money.Formatter) (Event, error) {
	description, err := e.Description(f)
	if err != nil {
		return Event{}, err
	}
	amount := e.AmountCents()
	return Event{
		ID:          e.ID,
		Date:        e.Date,
		Type:        e.Type,
		Details:     e.Details,
		Description: description,
		AmountCents: amount,
		Amount:      f.Format(amount),
		CreatedAt:   e.CreatedAt,
	}, nil
}
