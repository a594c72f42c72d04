package event

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

const dateLayout = "2006-01-02"

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

// Insert creates the event row. Transfers are written separately within the
// same transaction.
func (w *Writer) Insert(ctx context.Context, create *EventCreate) error {
	q := psql.Insert(
		im.Into("events", "id", "date", "event_type", "details", "created_at"),
		im.Values(
			psql.Arg(create.ID),
			psql.Arg(create.Date.Format(dateLayout)),
			psql.Arg(create.EventType),
			psql.Arg(create.Details),
			psql.Arg(create.CreatedAt),
		),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
