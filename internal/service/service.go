package service

import (
	"context"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/money"
	"github.com/carson-networks/shared-ledger/internal/operator/actions"
	"github.com/carson-networks/shared-ledger/internal/storage"
)

// Processor runs write actions in a transaction. The operator delegator
// implements it.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account *AccountService
	Event   *EventService
}

// NewService creates a new Service with the given storage. A nil splitter
// shares purchase remainders randomly.
func NewService(store *storage.Storage, processor Processor, formatter money.Formatter, splitter *ledger.Splitter) *Service {
	return &Service{
		Account: NewAccountService(store, processor, formatter),
		Event:   NewEventService(store, processor, formatter, splitter),
	}
}
