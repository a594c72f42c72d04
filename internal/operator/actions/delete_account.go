package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/storage"
)

// DeleteAccount removes an account that has never taken part in an event.
// A missing account yields account.ErrNotFound.
type DeleteAccount struct {
	AccountID uuid.UUID

	IAction
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Accounts.FindByIDForUpdate(ctx, d.AccountID); err != nil {
		return err
	}

	count, err := writer.Transfers.CountByAccount(ctx, d.AccountID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ledger.NewInvalidInputError(ledger.MsgAccountHasTransfers)
	}

	return writer.Accounts.Delete(ctx, d.AccountID)
}
