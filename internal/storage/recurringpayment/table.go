package recurringpayment

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var columns = []string{
	"id", "recurrence_interval", "start_date", "end_date", "is_endless",
	"amount", "type", "charged_account_id", "target_account_id", "category_id",
	"note", "created_at",
}

// Table provides access to the recurring_payments table.
type Table struct {
	exec bob.Executor
}

var _ Store = (*Table)(nil)

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a template by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*RecurringPayment, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("recurring_payments"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[RecurringPayment]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new template and returns the stored row.
func (t *Table) Insert(ctx context.Context, create *RecurringPaymentCreate) (*RecurringPayment, error) {
	q := psql.Insert(
		im.Into("recurring_payments",
			"recurrence_interval", "start_date", "end_date", "is_endless",
			"amount", "type", "charged_account_id", "target_account_id",
			"category_id", "note",
		),
		im.Values(psql.Arg(
			create.Interval, create.StartDate, create.EndDate, create.IsEndless,
			create.Amount, create.Type, create.ChargedAccountID,
			create.TargetAccountID, create.CategoryID, create.Note,
		)),
		im.Returning(toAnySlice(columns)...),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[RecurringPayment]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update rewrites the template's mutable fields.
func (t *Table) Update(ctx context.Context, rp *RecurringPayment) error {
	q := psql.Update(
		um.Table("recurring_payments"),
		um.SetCol("recurrence_interval").ToArg(rp.Interval),
		um.SetCol("start_date").ToArg(rp.StartDate),
		um.SetCol("end_date").ToArg(rp.EndDate),
		um.SetCol("is_endless").ToArg(rp.IsEndless),
		um.SetCol("amount").ToArg(rp.Amount),
		um.SetCol("type").ToArg(rp.Type),
		um.SetCol("charged_account_id").ToArg(rp.ChargedAccountID),
		um.SetCol("target_account_id").ToArg(rp.TargetAccountID),
		um.SetCol("category_id").ToArg(rp.CategoryID),
		um.SetCol("note").ToArg(rp.Note),
		um.Where(psql.Quote("id").EQ(psql.Arg(rp.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns every template, oldest first.
func (t *Table) List(ctx context.Context) ([]*RecurringPayment, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("recurring_payments"),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[RecurringPayment]())
	if err != nil {
		return nil, err
	}

	result := make([]*RecurringPayment, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Delete removes a template row.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("recurring_payments"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
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
