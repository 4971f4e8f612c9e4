package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/payment"
	"github.com/carson-networks/ledger-server/internal/storage/recurringpayment"
	"github.com/carson-networks/ledger-server/internal/storage/settings"
)

// Reader exposes read access per entity. Fields are interfaces so service
// tests can inject table mocks.
type Reader struct {
	Accounts          account.Store
	Payments          payment.Store
	RecurringPayments recurringpayment.Store
	Categories        category.Store
	Settings          settings.Store
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:          account.NewTable(exec),
		Payments:          payment.NewTable(exec),
		RecurringPayments: recurringpayment.NewTable(exec),
		Categories:        category.NewTable(exec),
		Settings:          settings.NewTable(exec),
	}
}
