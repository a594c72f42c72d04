package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/shared-ledger/internal/ledger"
	"github.com/carson-networks/shared-ledger/internal/storage"
	"github.com/carson-networks/shared-ledger/internal/storage/account"
)

type CreateAccount struct {
	Name string

	// Set by Perform.
	AccountID uuid.UUID

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	name, err := ledger.NormalizeAccountName(c.Name)
	if err != nil {
		return err
	}

	_, err = writer.Accounts.FindByName(ctx, name)
	if err == nil {
		return ledger.NewInvalidInputError(ledger.MsgNameTaken)
	}
	if !errors.Is(err, account.ErrNotFound) {
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	c.AccountID, err = writer.Accounts.Insert(ctx, &account.AccountCreate{ID: id, Name: name})
	if errors.Is(err, account.ErrNameTaken) {
		return ledger.NewInvalidInputError(ledger.MsgNameTaken)
	}
	return err
}
