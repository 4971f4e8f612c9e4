package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []string{"id", "name", "note", "created_at"}

// Table provides access to the categories table.
type Table struct {
	exec bob.Executor
}

var _ Store = (*Table)(nil)

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a category by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new category and returns the stored row.
func (t *Table) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into("categories", "name", "note"),
		im.Values(psql.Arg(create.Name, create.Note)),
		im.Returning(toAnySlice(columns)...),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns categories matching the filter. Nil filter returns all.
func (t *Table) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(columns)...),
		sm.From("categories"),
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

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}

	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func toAnySlice(cols []string) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
