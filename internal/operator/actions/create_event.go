package actions

import (
	"context"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/storage"
)

type CreatePayment struct {
	Request  ledger.PaymentRequest
	Splitter *ledger.Splitter

	// Set by Perform.
	Event *ledger.Event

	IAction
}

func (c *CreatePayment) Perform(ctx context.Context, writer *storage.Writer) error {
	store := ledgerStore{writer: writer}
	event, err := ledger.NewBuilder(store, store, c.Splitter).CreatePayment(ctx, c.Request)
	if err != nil {
		return err
	}
	c.Event = event
	return nil
}

// CreatePurchase shares the purchase among every account that exists when
// the action runs.
type CreatePurchase struct {
	Request  ledger.PurchaseRequest
	Splitter *ledger.Splitter

	// Set by Perform.
	Event *ledger.Event

	IAction
}

func (c *CreatePurchase) Perform(ctx context.Context, writer *storage.Writer) error {
	store := ledgerStore{writer: writer}
	event, err := ledger.NewBuilder(store, store, c.Splitter).CreatePurchase(ctx, c.Request)
	if err != nil {
		return err
	}
	c.Event = event
	return nil
}
