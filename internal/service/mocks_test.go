package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/payment"
	"github.com/carson-networks/ledger-server/internal/storage/recurringpayment"
)

type mockAccountStore struct {
	mock.Mock
}

func (m *mockAccountStore) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountStore) Insert(ctx context.Context, create *account.AccountCreate) (*account.Account, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountStore) List(ctx context.Context, filter *account.AccountFilter) ([]*account.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *mockAccountStore) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

type mockPaymentStore struct {
	mock.Mock
}

func (m *mockPaymentStore) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *mockPaymentStore) Insert(ctx context.Context, create *payment.PaymentCreate) (*payment.Payment, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *mockPaymentStore) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaymentStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPaymentStore) UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

func (m *mockPaymentStore) ListForAccount(ctx context.Context, accountID uuid.UUID, window *payment.DateWindow) ([]*payment.Payment, error) {
	args := m.Called(ctx, accountID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *mockPaymentStore) CountByRecurringPayment(ctx context.Context, recurringPaymentID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recurringPaymentID)
	return args.Get(0).(int64), args.Error(1)
}

type mockRecurringPaymentStore struct {
	mock.Mock
}

func (m *mockRecurringPaymentStore) FindByID(ctx context.Context, id uuid.UUID) (*recurringpayment.RecurringPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recurringpayment.RecurringPayment), args.Error(1)
}

func (m *mockRecurringPaymentStore) Insert(ctx context.Context, create *recurringpayment.RecurringPaymentCreate) (*recurringpayment.RecurringPayment, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recurringpayment.RecurringPayment), args.Error(1)
}

func (m *mockRecurringPaymentStore) Update(ctx context.Context, rp *recurringpayment.RecurringPayment) error {
	args := m.Called(ctx, rp)
	return args.Error(0)
}

func (m *mockRecurringPaymentStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRecurringPaymentStore) List(ctx context.Context) ([]*recurringpayment.RecurringPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recurringpayment.RecurringPayment), args.Error(1)
}

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryStore) Insert(ctx context.Context, create *category.CategoryCreate) (*category.Category, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryStore) List(ctx context.Context, filter *category.CategoryFilter) ([]*category.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

type mockSettingsStore struct {
	mock.Mock
}

func (m *mockSettingsStore) SetLastDatabaseUpdate(ctx context.Context, ts time.Time) error {
	args := m.Called(ctx, ts)
	return args.Error(0)
}

func (m *mockSettingsStore) LastDatabaseUpdate(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}
