package ledger

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// Book links stored accounts, events and transfers back into one graph.
// Transfers must be posted in creation order.
type Book struct {
	accounts map[uuid.UUID]*Account
	events   map[uuid.UUID]*Event
}

func NewBook(accounts []*Account, events []*Event) *Book {
	b := &Book{
		accounts: make(map[uuid.UUID]*Account, len(accounts)),
		events:   make(map[uuid.UUID]*Event, len(events)),
	}
	for _, a := range accounts {
		b.accounts[a.ID] = a
	}
	for _, e := range events {
		b.events[e.ID] = e
	}
	return b
}

func (b *Book) Account(id uuid.UUID) (*Account, bool) {
	a, ok := b.accounts[id]
	return a, ok
}

func (b *Book) Event(id uuid.UUID) (*Event, bool) {
	e, ok := b.events[id]
	return e, ok
}

// Post appends a transfer to its account and, when the event is known, to
// its event. Events that were not loaded leave Transfer.Event nil, which is
// enough for balance arithmetic.
func (b *Book) Post(id, accountID, eventID uuid.UUID, amountCents int64) (*Transfer, error) {
	account, ok := b.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("transfer %s references unknown account %s", id, accountID)
	}

	t := &Transfer{
		ID:          id,
		Account:     account,
		AmountCents: amountCents,
	}
	account.Transfers = append(account.Transfers, t)

	if event, ok := b.events[eventID]; ok {
		t.Event = event
		event.Transfers = append(event.Transfers, t)
	}
	return t, nil
}
