package actions

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/payment"
	"github.com/carson-networks/ledger-server/internal/storage/recurringpayment"
)

// In-memory stores standing in for the Bob-backed tables. They reproduce the
// observable contract the actions rely on: sql.ErrNoRows on missing rows and
// (date, created_at, id) ordering on ListForAccount.

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) next() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fakeAccountStore struct {
	rows map[uuid.UUID]*account.Account
}

func (f *fakeAccountStore) FindByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *row
	return &cp, nil
}

func (f *fakeAccountStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeAccountStore) Insert(_ context.Context, create *account.AccountCreate) (*account.Account, error) {
	row := &account.Account{
		ID:               uuid.Must(uuid.NewV4()),
		Name:             create.Name,
		CurrentBalance:   create.StartingBalance,
		StartingBalance:  create.StartingBalance,
		ExcludeFromStats: create.ExcludeFromStats,
		Note:             create.Note,
		CreatedAt:        time.Now(),
	}
	f.rows[row.ID] = row
	cp := *row
	return &cp, nil
}

func (f *fakeAccountStore) List(_ context.Context, _ *account.AccountFilter) ([]*account.Account, error) {
	out := make([]*account.Account, 0, len(f.rows))
	for _, row := range f.rows {
		cp := *row
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeAccountStore) UpdateBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	row, ok := f.rows[id]
	if !ok {
		return sql.ErrNoRows
	}
	row.CurrentBalance = balance
	return nil
}

type fakePaymentStore struct {
	rows  map[uuid.UUID]*payment.Payment
	clock *fakeClock
}

func (f *fakePaymentStore) FindByID(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *row
	return &cp, nil
}

func (f *fakePaymentStore) Insert(_ context.Context, create *payment.PaymentCreate) (*payment.Payment, error) {
	row := &payment.Payment{
		ID:                 uuid.Must(uuid.NewV4()),
		Date:               create.Date,
		Amount:             create.Amount,
		Type:               create.Type,
		ChargedAccountID:   create.ChargedAccountID,
		TargetAccountID:    create.TargetAccountID,
		CategoryID:         create.CategoryID,
		RecurringPaymentID: create.RecurringPaymentID,
		IsCleared:          create.IsCleared,
		Note:               create.Note,
		CreatedAt:          f.clock.next(),
	}
	f.rows[row.ID] = row
	cp := *row
	return &cp, nil
}

func (f *fakePaymentStore) Update(_ context.Context, p *payment.Payment) error {
	row, ok := f.rows[p.ID]
	if !ok {
		return sql.ErrNoRows
	}
	created := row.CreatedAt
	cp := *p
	cp.CreatedAt = created
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePaymentStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

func (f *fakePaymentStore) UpdateAccountBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	row, ok := f.rows[id]
	if !ok {
		return sql.ErrNoRows
	}
	row.AccountBalance = balance
	return nil
}

func (f *fakePaymentStore) ListForAccount(_ context.Context, accountID uuid.UUID, window *payment.DateWindow) ([]*payment.Payment, error) {
	var out []*payment.Payment
	for _, row := range f.rows {
		if row.ChargedAccountID != accountID &&
			!(row.TargetAccountID.Valid && row.TargetAccountID.UUID == accountID) {
			continue
		}
		if window != nil {
			if !window.From.IsZero() && row.Date.Before(window.From) {
				continue
			}
			if !window.To.IsZero() && row.Date.After(window.To) {
				continue
			}
		}
		cp := *row
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (f *fakePaymentStore) CountByRecurringPayment(_ context.Context, recurringPaymentID uuid.UUID) (int64, error) {
	var n int64
	for _, row := range f.rows {
		if row.RecurringPaymentID.Valid && row.RecurringPaymentID.UUID == recurringPaymentID {
			n++
		}
	}
	return n, nil
}

type fakeRecurringStore struct {
	rows map[uuid.UUID]*recurringpayment.RecurringPayment
}

func (f *fakeRecurringStore) FindByID(_ context.Context, id uuid.UUID) (*recurringpayment.RecurringPayment, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *row
	return &cp, nil
}

func (f *fakeRecurringStore) Insert(_ context.Context, create *recurringpayment.RecurringPaymentCreate) (*recurringpayment.RecurringPayment, error) {
	row := &recurringpayment.RecurringPayment{
		ID:               uuid.Must(uuid.NewV4()),
		Interval:         create.Interval,
		StartDate:        create.StartDate,
		EndDate:          create.EndDate,
		IsEndless:        create.IsEndless,
		Amount:           create.Amount,
		Type:             create.Type,
		ChargedAccountID: create.ChargedAccountID,
		TargetAccountID:  create.TargetAccountID,
		CategoryID:       create.CategoryID,
		Note:             create.Note,
		CreatedAt:        time.Now(),
	}
	f.rows[row.ID] = row
	cp := *row
	return &cp, nil
}

func (f *fakeRecurringStore) Update(_ context.Context, rp *recurringpayment.RecurringPayment) error {
	if _, ok := f.rows[rp.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *rp
	f.rows[rp.ID] = &cp
	return nil
}

func (f *fakeRecurringStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeRecurringStore) List(_ context.Context) ([]*recurringpayment.RecurringPayment, error) {
	out := make([]*recurringpayment.RecurringPayment, 0, len(f.rows))
	for _, row := range f.rows {
		cp := *row
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

type fakeCategoryStore struct {
	rows map[uuid.UUID]*category.Category
}

func (f *fakeCategoryStore) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *row
	return &cp, nil
}

func (f *fakeCategoryStore) Insert(_ context.Context, create *category.CategoryCreate) (*category.Category, error) {
	row := &category.Category{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      create.Name,
		Note:      create.Note,
		CreatedAt: time.Now(),
	}
	f.rows[row.ID] = row
	cp := *row
	return &cp, nil
}

func (f *fakeCategoryStore) List(_ context.Context, _ *category.CategoryFilter) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(f.rows))
	for _, row := range f.rows {
		cp := *row
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeSettingsStore struct {
	lastUpdate time.Time
}

func (f *fakeSettingsStore) SetLastDatabaseUpdate(_ context.Context, ts time.Time) error {
	f.lastUpdate = ts
	return nil
}

func (f *fakeSettingsStore) LastDatabaseUpdate(_ context.Context) (time.Time, error) {
	return f.lastUpdate, nil
}

// testWorld bundles the fakes behind a storage.Writer the actions accept.
type testWorld struct {
	accounts   *fakeAccountStore
	payments   *fakePaymentStore
	recurring  *fakeRecurringStore
	categories *fakeCategoryStore
	settings   *fakeSettingsStore
	writer     storage.Writer
}

func newTestWorld() *testWorld {
	w := &testWorld{
		accounts:   &fakeAccountStore{rows: map[uuid.UUID]*account.Account{}},
		payments:   &fakePaymentStore{rows: map[uuid.UUID]*payment.Payment{}, clock: newFakeClock()},
		recurring:  &fakeRecurringStore{rows: map[uuid.UUID]*recurringpayment.RecurringPayment{}},
		categories: &fakeCategoryStore{rows: map[uuid.UUID]*category.Category{}},
		settings:   &fakeSettingsStore{},
	}
	w.writer = storage.Writer{
		Account:          w.accounts,
		Payment:          w.payments,
		RecurringPayment: w.recurring,
		Category:         w.categories,
		Settings:         w.settings,
	}
	return w
}

func (w *testWorld) addAccount(name, startingBalance string) *account.Account {
	acct, _ := w.accounts.Insert(context.Background(), &account.AccountCreate{
		Name:            name,
		StartingBalance: decimal.RequireFromString(startingBalance),
	})
	return acct
}

func (w *testWorld) balance(id uuid.UUID) decimal.Decimal {
	return w.accounts.rows[id].CurrentBalance
}
