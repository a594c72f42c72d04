package transfer

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

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

// InsertMany writes all transfers with one statement, preserving their
// order in seq.
func (w *Writer) InsertMany(ctx context.Context, creates []*TransferCreate) error {
	if len(creates) == 0 {
		return nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("transfers", "id", "account_id", "event_id", "amount_cents"),
	}
	for _, c := range creates {
		queryMods = append(queryMods, im.Values(
			psql.Arg(c.ID),
			psql.Arg(c.AccountID),
			psql.Arg(c.EventID),
			psql.Arg(c.AmountCents),
		))
	}

	_, err := bob.Exec(ctx, w.tx, psql.Insert(queryMods...))
	return err
}
