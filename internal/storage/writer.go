package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/payment"
	"github.com/carson-networks/ledger-server/internal/storage/recurringpayment"
	"github.com/carson-networks/ledger-server/internal/storage/settings"
)

// Writer bundles per-entity write access bound to one transaction. Fields
// are interfaces so action tests can run against in-memory fakes.
type Writer struct {
	tx bob.Tx

	Account          account.Store
	Payment          payment.Store
	RecurringPayment recurringpayment.Store
	Category         category.Store
	Settings         settings.Store
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:               tx,
		Account:          account.NewTable(tx),
		Payment:          payment.NewTable(tx),
		RecurringPayment: recurringpayment.NewTable(tx),
		Category:         category.NewTable(tx),
		Settings:         settings.NewTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
