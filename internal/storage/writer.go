package storage

import (
	"context"

	"github.com/carson-networks/shared-ledger/internal/storage/account"
	"github.com/carson-networks/shared-ledger/internal/storage/event"
	"github.com/carson-networks/shared-ledger/internal/storage/transfer"
)

// Writer groups the table writers of one transaction.
type Writer struct {
	tx        Tx
	Accounts  *account.Writer
	Events    *event.Writer
	Transfers *transfer.Writer
}

func NewWriter(tx Tx) *Writer {
	return &Writer{
		tx:        tx,
		Accounts:  account.NewWriter(tx),
		Events:    event.NewWriter(tx),
		Transfers: transfer.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
