package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is one write command, performed inside the transaction the
// operator opened.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// mapNotFound converts the store's no-rows error into a domain sentinel.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}
