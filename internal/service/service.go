package service

import (
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all read-side services. Writes go through the operator.
type Service struct {
	Account  *AccountService
	Payment  *PaymentService
	Category *CategoryService
	Export   *ExportService
}

// NewService creates a new Service over the storage reader.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:  NewAccountService(store.Reader),
		Payment:  NewPaymentService(store.Reader),
		Category: NewCategoryService(store.Reader),
		Export:   NewExportService(store.Reader),
	}
}
