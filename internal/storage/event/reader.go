package event

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IEventReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns ErrNotFound when no event has the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	q := psql.Select(
		sm.Columns(eventColumns...),
		sm.From("events"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Event]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns events ordered by date, then creation. A filter with a
// Limit asks for one extra row so callers can tell whether a next page
// exists.
func (r *Reader) List(ctx context.Context, filter *EventFilter) ([]*Event, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(eventColumns...),
		sm.From("events"),
	}
	if filter != nil {
		if filter.IDs != nil {
			if len(filter.IDs) == 0 {
				return nil, nil
			}
			ids := make([]bob.Expression, len(filter.IDs))
			for i, id := range filter.IDs {
				ids[i] = psql.Arg(id)
			}
			queryMods = append(queryMods, sm.Where(psql.Quote("id").In(ids...)))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("date")).Asc(),
		sm.OrderBy(psql.Quote("seq")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Event]())
	if err != nil {
		return nil, err
	}

	result := make([]*Event, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
