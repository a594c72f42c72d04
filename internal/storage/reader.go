package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/shared-ledger/internal/storage/account"
	"github.com/carson-networks/shared-ledger/internal/storage/event"
	"github.com/carson-networks/shared-ledger/internal/storage/transfer"
)

type Reader struct {
	Accounts  *account.Reader
	Events    *event.Reader
	Transfers *transfer.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:  account.NewReader(exec),
		Events:    event.NewReader(exec),
		Transfers: transfer.NewReader(exec),
	}
}
