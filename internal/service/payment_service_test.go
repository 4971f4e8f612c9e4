package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/payment"
)

func newPaymentTestService(t *testing.T) (*PaymentService, *mockAccountStore, *mockPaymentStore) {
	t.Helper()
	accounts := &mockAccountStore{}
	accounts.Test(t)
	payments := &mockPaymentStore{}
	payments.Test(t)
	t.Cleanup(func() {
		accounts.AssertExpectations(t)
		payments.AssertExpectations(t)
	})
	svc := NewPaymentService(&storage.Reader{Accounts: accounts, Payments: payments})
	return svc, accounts, payments
}

func makePaymentRows(accountID uuid.UUID, n int) []*payment.Payment {
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	rows := make([]*payment.Payment, n)
	for i := range rows {
		rows[i] = &payment.Payment{
			ID:               uuid.Must(uuid.NewV4()),
			Date:             base.AddDate(0, 0, i),
			Amount:           decimal.RequireFromString("12.30"),
			Type:             ledger.Expense,
			ChargedAccountID: accountID,
			AccountBalance:   decimal.RequireFromString("87.70"),
			CreatedAt:        base,
		}
	}
	return rows
}

func TestGetPayment_Success(t *testing.T) {
	svc, _, payments := newPaymentTestService(t)

	row := makePaymentRows(uuid.Must(uuid.NewV4()), 1)[0]
	payments.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	got, err := svc.GetPayment(context.Background(), row.ID)

	assert.NoError(t, err)
	assert.Equal(t, row.ID, got.ID)
	assert.Equal(t, row.ChargedAccountID, got.ChargedAccountID)
	assert.True(t, row.Amount.Equal(got.Amount))
	assert.True(t, row.AccountBalance.Equal(got.AccountBalance))
}

func TestGetPayment_NotFound(t *testing.T) {
	svc, _, payments := newPaymentTestService(t)

	payments.On("FindByID", mock.Anything, mock.Anything).
		Return(nil, sql.ErrNoRows)

	got, err := svc.GetPayment(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, got)
}

func TestListPayments_UnknownAccount(t *testing.T) {
	svc, accounts, _ := newPaymentTestService(t)

	accounts.On("FindByID", mock.Anything, mock.Anything).
		Return(nil, sql.ErrNoRows)

	rows, err := svc.ListPayments(context.Background(), uuid.Must(uuid.NewV4()), time.Time{}, time.Time{})

	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	assert.Nil(t, rows)
}

func TestListPayments_NoWindow(t *testing.T) {
	svc, accounts, payments := newPaymentTestService(t)

	acct := &account.Account{ID: uuid.Must(uuid.NewV4()), Name: "Checking"}
	rows := makePaymentRows(acct.ID, 3)

	accounts.On("FindByID", mock.Anything, acct.ID).Return(acct, nil)
	payments.On("ListForAccount", mock.Anything, acct.ID, (*payment.DateWindow)(nil)).
		Return(rows, nil)

	got, err := svc.ListPayments(context.Background(), acct.ID, time.Time{}, time.Time{})

	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, rows[0].ID, got[0].ID)
	assert.Equal(t, rows[2].ID, got[2].ID)
}

func TestListPayments_WithWindow(t *testing.T) {
	svc, accounts, payments := newPaymentTestService(t)

	acct := &account.Account{ID: uuid.Must(uuid.NewV4()), Name: "Checking"}
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	accounts.On("FindByID", mock.Anything, acct.ID).Return(acct, nil)
	payments.On("ListForAccount", mock.Anything, acct.ID, mock.MatchedBy(func(w *payment.DateWindow) bool {
		return w != nil && w.From.Equal(from) && w.To.Equal(to)
	})).Return(makePaymentRows(acct.ID, 1), nil)

	got, err := svc.ListPayments(context.Background(), acct.ID, from, to)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListPayments_StorageError(t *testing.T) {
	svc, accounts, payments := newPaymentTestService(t)

	acct := &account.Account{ID: uuid.Must(uuid.NewV4())}
	accounts.On("FindByID", mock.Anything, acct.ID).Return(acct, nil)
	payments.On("ListForAccount", mock.Anything, acct.ID, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	got, err := svc.ListPayments(context.Background(), acct.ID, time.Time{}, time.Time{})

	assert.Error(t, err)
	assert.Nil(t, got)
}
