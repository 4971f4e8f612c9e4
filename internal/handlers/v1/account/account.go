package account

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	accountstore "github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account is the API response model for an account.
type Account struct {
	ID               string `json:"id" doc:"Account UUID"`
	Name             string `json:"name" doc:"Account name"`
	CurrentBalance   string `json:"currentBalance" doc:"Decimal balance including every cleared and uncleared payment"`
	StartingBalance  string `json:"startingBalance" doc:"Decimal balance the account opened with"`
	ExcludeFromStats bool   `json:"excludeFromStats" doc:"Hide this account from statistics"`
	Note             string `json:"note,omitempty" doc:"Free-form note"`
	CreatedAt        string `json:"createdAt" doc:"RFC3339 record creation time"`
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func fromService(a service.Account) Account {
	return Account{
		ID:               a.ID.String(),
		Name:             a.Name,
		CurrentBalance:   a.CurrentBalance.String(),
		StartingBalance:  a.StartingBalance.String(),
		ExcludeFromStats: a.ExcludeFromStats,
		Note:             a.Note,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
	}
}

func fromStorage(a *accountstore.Account) Account {
	return Account{
		ID:               a.ID.String(),
		Name:             a.Name,
		CurrentBalance:   a.CurrentBalance.String(),
		StartingBalance:  a.StartingBalance.String(),
		ExcludeFromStats: a.ExcludeFromStats,
		Note:             a.Note,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
	}
}
