package transfer

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransferReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns transfers in creation order.
func (r *Reader) List(ctx context.Context, filter *TransferFilter) ([]*Transfer, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transferColumns...),
		sm.From("transfers"),
	}
	if filter != nil {
		if accountID, ok := filter.AccountID.Get(); ok {
			queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))))
		}
		if filter.EventIDs != nil {
			if len(filter.EventIDs) == 0 {
				return nil, nil
			}
			ids := make([]bob.Expression, len(filter.EventIDs))
			for i, id := range filter.EventIDs {
				ids[i] = psql.Arg(id)
			}
			queryMods = append(queryMods, sm.Where(psql.Quote("event_id").In(ids...)))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("seq")).Asc())

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Transfer]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transfer, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *Reader) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transfers"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
	)
	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
}
