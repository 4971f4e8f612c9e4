package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// CreateAccount persists a new account. The current balance starts at the
// starting balance and is only ever moved by payment recalculation.
type CreateAccount struct {
	Name             string
	StartingBalance  decimal.Decimal
	ExcludeFromStats bool
	Note             string

	Result *account.Account
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Account.Insert(ctx, &account.AccountCreate{
		Name:             a.Name,
		StartingBalance:  a.StartingBalance,
		ExcludeFromStats: a.ExcludeFromStats,
		Note:             a.Note,
	})
	if err != nil {
		return err
	}

	a.Result = created
	return nil
}
