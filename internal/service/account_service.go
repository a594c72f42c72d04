package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/money"
	"github.com/carson-networks/shared-ledger/internal/operator/actions"
	"github.com/carson-networks/shared-ledger/internal/storage"
	"github.com/carson-networks/shared-ledger/internal/storage/account"
	"github.com/carson-networks/shared-ledger/internal/storage/event"
	"github.com/carson-networks/shared-ledger/internal/storage/transfer"
)

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor Processor
	formatter money.Formatter
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor Processor, formatter money.Formatter) *AccountService {
	return &AccountService{
		storage:   store,
		processor: processor,
		formatter: formatter,
	}
}

// CreateAccount creates a new account and returns its ID. Blank and
// duplicate names are a *ledger.InvalidInputError.
func (s *AccountService) CreateAccount(ctx context.Context, name string) (uuid.UUID, error) {
	action := &actions.CreateAccount{Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.AccountID, nil
}

// DeleteAccount removes an account that has no transfers.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	err := s.processor.Process(ctx, &actions.DeleteAccount{AccountID: id})
	if errors.Is(err, account.ErrNotFound) {
		return ErrAccountNotFound
	}
	return err
}

// ListAccounts returns every account ordered by name, with balances.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	// Transfers first, see loadBook.
	transfers, err := s.storage.Transfers.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	accounts, err := listLedgerAccounts(ctx, s.storage)
	if err != nil {
		return nil, err
	}
	if err := post(ledger.NewBook(accounts, nil), transfers); err != nil {
		return nil, err
	}

	result := make([]Account, len(accounts))
	for i, a := range accounts {
		result[i] = toAccount(a, s.formatter)
	}
	return result, nil
}

// GetAccount retrieves an account with its statement.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*AccountDetail, error) {
	if _, err := s.storage.Accounts.FindByID(ctx, id); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	own, err := s.storage.Transfers.List(ctx, &transfer.TransferFilter{AccountID: omit.From(id)})
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	var eventRows []*event.Event
	if len(own) > 0 {
		seen := make(map[uuid.UUID]bool, len(own))
		var ids []uuid.UUID
		for _, t := range own {
			if !seen[t.EventID] {
				seen[t.EventID] = true
				ids = append(ids, t.EventID)
			}
		}
		eventRows, err = s.storage.Events.List(ctx, &event.EventFilter{IDs: ids})
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
	}

	book, _, err := loadBook(ctx, s.storage, eventRows)
	if err != nil {
		return nil, err
	}
	a, ok := book.Account(id)
	if !ok {
		return nil, ErrAccountNotFound
	}

	detail := &AccountDetail{
		Account:   toAccount(a, s.formatter),
		Transfers: make([]Transfer, len(a.Transfers)),
	}
	for i, t := range a.Transfers {
		description, err := t.Description()
		if err != nil {
			return nil, fmt.Errorf("describe transfer %s: %w", t.ID, err)
		}
		detail.Transfers[i] = Transfer{
			ID:          t.ID,
			EventID:     t.Event.ID,
			Date:        t.Date(),
			Description: description,
			AmountCents: t.AmountCents,
			Amount:      s.formatter.Format(t.AmountCents),
		}
	}
	return detail, nil
}
