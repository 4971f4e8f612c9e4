package payment

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var columns = []string{
	"id", "date", "amount", "type", "charged_account_id", "target_account_id",
	"category_id", "recurring_payment_id", "is_cleared", "note",
	"account_balance", "created_at",
}

// Table provides access to the payments table.
type Table struct {
	exec bob.Executor
}

var _ Store = (*Table)(nil)

// NewTable creates a Table bound to the given executor.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves a payment by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(columns)...),
		sm.From("payments"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Payment]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new payment and returns the stored row. The account
// balance snapshot starts at zero and is written by the recalculation pass.
func (t *Table) Insert(ctx context.Context, create *PaymentCreate) (*Payment, error) {
	q := psql.Insert(
		im.Into("payments",
			"date", "amount", "type", "charged_account_id", "target_account_id",
			"category_id", "recurring_payment_id", "is_cleared", "note",
		),
		im.Values(psql.Arg(
			create.Date, create.Amount, create.Type, create.ChargedAccountID,
			create.TargetAccountID, create.CategoryID, create.RecurringPaymentID,
			create.IsCleared, create.Note,
		)),
		im.Returning(toAnySlice(columns)...),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Payment]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update rewrites every mutable field of the payment row.
func (t *Table) Update(ctx context.Context, p *Payment) error {
	q := psql.Update(
		um.Table("payments"),
		um.SetCol("date").ToArg(p.Date),
		um.SetCol("amount").ToArg(p.Amount),
		um.SetCol("type").ToArg(p.Type),
		um.SetCol("charged_account_id").ToArg(p.ChargedAccountID),
		um.SetCol("target_account_id").ToArg(p.TargetAccountID),
		um.SetCol("category_id").ToArg(p.CategoryID),
		um.SetCol("recurring_payment_id").ToArg(p.RecurringPaymentID),
		um.SetCol("is_cleared").ToArg(p.IsCleared),
		um.SetCol("note").ToArg(p.Note),
		um.Where(psql.Quote("id").EQ(psql.Arg(p.ID))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes a payment row.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("payments"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// UpdateAccountBalance rewrites the cached snapshot for one payment.
func (t *Table) UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("payments"),
		um.SetCol("account_balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// ListForAccount returns payments affecting the account, charged or target
// side, ordered the way the recalculation replays them.
func (t *Table) ListForAccount(ctx context.Context, accountID uuid.UUID, window *DateWindow) ([]*Payment, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(columns)...),
		sm.From("payments"),
		sm.Where(psql.Raw("(charged_account_id = ? OR target_account_id = ?)", accountID, accountID)),
		sm.OrderBy("date").Asc(),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	}
	if window != nil {
		if !window.From.IsZero() {
			queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(window.From))))
		}
		if !window.To.IsZero() {
			queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(window.To))))
		}
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Payment]())
	if err != nil {
		return nil, err
	}

	result := make([]*Payment, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// CountByRecurringPayment counts payments still linked to a template.
func (t *Table) CountByRecurringPayment(ctx context.Context, recurringPaymentID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("payments"),
		sm.Where(psql.Quote("recurring_payment_id").EQ(psql.Arg(recurringPaymentID))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

func toAnySlice(cols []string) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
