package service

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/shared-ledger/internal/money"
	"github.com/carson-networks/shared-ledger/internal/operator/actions"
	"github.com/carson-networks/shared-ledger/internal/storage"
	"github.com/carson-networks/shared-ledger/internal/storage/account"
	"github.com/carson-networks/shared-ledger/internal/storage/event"
	"github.com/carson-networks/shared-ledger/internal/storage/transfer"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type testDeps struct {
	accounts  *account.MockIAccountReader
	events    *event.MockIEventReader
	transfers *transfer.MockITransferReader
	processor *mockProcessor
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()
	deps := &testDeps{
		accounts:  account.NewMockIAccountReader(t),
		events:    event.NewMockIEventReader(t),
		transfers: transfer.NewMockITransferReader(t),
		processor: new(mockProcessor),
	}
	store := &storage.Storage{
		Accounts:  deps.accounts,
		Events:    deps.events,
		Transfers: deps.transfers,
	}
	t.Cleanup(func() { deps.processor.AssertExpectations(t) })
	return NewService(store, deps.processor, money.NewFormatter(""), nil), deps
}

// fixture is a small group: Alice paid £20.16 to Bob, then Bob bought
// groceries for £30.00 shared by all three.
type fixture struct {
	alice, bob, carol *account.Account
	payment, purchase *event.Event
	transfers         []*transfer.Transfer
}

func newFixture() *fixture {
	created := time.Date(2016, 3, 1, 9, 0, 0, 0, time.UTC)
	f := &fixture{
		alice: &account.Account{ID: uuid.Must(uuid.NewV4()), Name: "Alice", CreatedAt: created},
		bob:   &account.Account{ID: uuid.Must(uuid.NewV4()), Name: "Bob", CreatedAt: created},
		carol: &account.Account{ID: uuid.Must(uuid.NewV4()), Name: "Carol", CreatedAt: created},
		payment: &event.Event{
			ID:        uuid.Must(uuid.NewV4()),
			Date:      time.Date(2016, 3, 4, 0, 0, 0, 0, time.UTC),
			EventType: "payment",
			CreatedAt: created,
		},
		purchase: &event.Event{
			ID:        uuid.Must(uuid.NewV4()),
			Date:      time.Date(2016, 3, 5, 0, 0, 0, 0, time.UTC),
			EventType: "purchase",
			Details:   null.From("groceries"),
			CreatedAt: created,
		},
	}
	newTransfer := func(a *account.Account, e *event.Event, cents int64) *transfer.Transfer {
		return &transfer.Transfer{ID: uuid.Must(uuid.NewV4()), AccountID: a.ID, EventID: e.ID, AmountCents: cents}
	}
	f.transfers = []*transfer.Transfer{
		newTransfer(f.alice, f.payment, 2016),
		newTransfer(f.bob, f.payment, -2016),
		newTransfer(f.bob, f.purchase, 3000),
		newTransfer(f.alice, f.purchase, -1000),
		newTransfer(f.bob, f.purchase, -1000),
		newTransfer(f.carol, f.purchase, -1000),
	}
	return f
}

func (f *fixture) accounts() []*account.Account {
	return []*account.Account{f.alice, f.bob, f.carol}
}

func (f *fixture) transfersOf(id uuid.UUID) []*transfer.Transfer {
	var result []*transfer.Transfer
	for _, t := range f.transfers {
		if t.AccountID == id {
			result = append(result, t)
		}
	}
	return result
}
