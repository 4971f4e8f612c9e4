package settings

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const lastDatabaseUpdateKey = "last_database_update"

// Store records application-level settings. The write path stamps the last
// database update on every successful command.
type Store interface {
	SetLastDatabaseUpdate(ctx context.Context, ts time.Time) error
	LastDatabaseUpdate(ctx context.Context) (time.Time, error)
}

// Table provides access to the settings table. The migration seeds the
// last_database_update row, so writes are plain updates.
type Table struct {
	exec bob.Executor
}

var _ Store = (*Table)(nil)

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// SetLastDatabaseUpdate stamps the timestamp of the latest data mutation.
func (t *Table) SetLastDatabaseUpdate(ctx context.Context, ts time.Time) error {
	q := psql.Update(
		um.Table("settings"),
		um.SetCol("value").ToArg(ts.UTC().Format(time.RFC3339Nano)),
		um.Where(psql.Quote("key").EQ(psql.Arg(lastDatabaseUpdateKey))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// LastDatabaseUpdate reads the stamp back. A never-written value returns the
// zero time.
func (t *Table) LastDatabaseUpdate(ctx context.Context) (time.Time, error) {
	q := psql.Select(
		sm.Columns("value"),
		sm.From("settings"),
		sm.Where(psql.Quote("key").EQ(psql.Arg(lastDatabaseUpdateKey))),
	)

	value, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[string])
	if err != nil {
		return time.Time{}, err
	}
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}
