package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// recalculateAccount replays the account's full payment history from its
// starting balance, rewrites every drifted snapshot, and updates the current
// balance. Replaying everything keeps the pass idempotent and covers
// backdated inserts and both sides of transfers in one shot.
func recalculateAccount(ctx context.Context, writer *storage.Writer, accountID uuid.UUID) error {
	acct, err := writer.Account.FindByIDForUpdate(ctx, accountID)
	if err != nil {
		return mapNotFound(err, ledger.ErrAccountNotFound)
	}

	payments, err := writer.Payment.ListForAccount(ctx, accountID, nil)
	if err != nil {
		return err
	}

	entries := make([]ledger.Entry, len(payments))
	for i, p := range payments {
		entries[i] = p.EntryFor(accountID)
	}
	ledger.SortEntries(entries)

	balance, updates := ledger.Replay(acct.StartingBalance, entries)
	for _, u := range updates {
		if err := writer.Payment.UpdateAccountBalance(ctx, u.PaymentID, u.AccountBalance); err != nil {
			return err
		}
	}

	if !acct.CurrentBalance.Equal(balance) {
		if err := writer.Account.UpdateBalance(ctx, accountID, balance); err != nil {
			return err
		}
	}
	return nil
}

// recalculateAccounts runs the pass once per distinct account id.
func recalculateAccounts(ctx context.Context, writer *storage.Writer, ids ...uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if err := recalculateAccount(ctx, writer, id); err != nil {
			return err
		}
	}
	return nil
}
