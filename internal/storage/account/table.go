package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var columns = []string{
	"id", "name", "current_balance", "starting_balance",
	"exclude_from_stats", "note", "created_at",
}

// Table provides access to the accounts table.
type Table struct {
	exec bob.Executor
}

var _ Store = (*Table)(nil)

// NewTable creates a Table bound to the given executor (database or
// transaction).
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func (t *Table) find(ctx context.Context, id uuid.UUID, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(columns)...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByID retrieves an account by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return t.find(ctx, id, false)
}

// FindByIDForUpdate retrieves an account and locks the row for the span of
// the enclosing transaction.
func (t *Table) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	return t.find(ctx, id, true)
}

// Insert creates a new account and returns the stored row.
func (t *Table) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	q := psql.Insert(
		im.Into("accounts", "name", "current_balance", "starting_balance", "exclude_from_stats", "note"),
		im.Values(psql.Arg(create.Name, create.StartingBalance, create.StartingBalance, create.ExcludeFromStats, create.Note)),
		im.Returning(toAnySlice(columns)...),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns accounts matching the filter. Nil filter returns all.
func (t *Table) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(columns)...),
		sm.From("accounts"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// UpdateBalance updates the current balance for a given account.
func (t *Table) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("current_balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func toAnySlice(cols []string) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
