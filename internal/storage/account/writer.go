package account

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

const uniqueViolation = "23505"

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the account row for the rest of the transaction.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	return w.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
}

// FindByIDForShare blocks deletion of the account for the rest of the
// transaction. Share locks do not conflict with each other, so concurrent
// events over the same accounts never wait on one another.
func (w *Writer) FindByIDForShare(ctx context.Context, id uuid.UUID) (*Account, error) {
	return w.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForShare(),
	)
}

// Insert creates the account. A duplicate name returns ErrNameTaken.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("accounts", "id", "name"),
		im.Values(psql.Arg(create.ID), psql.Arg(create.Name)),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrNameTaken
		}
		return uuid.Nil, err
	}
	return create.ID, nil
}

// Delete removes the account. It returns ErrNotFound if nothing was deleted.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
