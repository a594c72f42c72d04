package account

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

var _ IAccountReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every account ordered by name.
func (r *Reader) List(ctx context.Context) ([]*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// FindByID returns ErrNotFound when no account has the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// FindByName returns ErrNotFound when no account has the name.
func (r *Reader) FindByName(ctx context.Context, name string) (*Account, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("name").EQ(psql.Arg(name))))
}

func (r *Reader) findOne(ctx context.Context, extra ...bob.Mod[*dialect.SelectQuery]) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From("accounts"),
	}
	queryMods = append(queryMods, extra...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
