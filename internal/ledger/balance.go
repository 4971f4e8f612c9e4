package ledger

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Entry is the per-account view of one payment: what the payment does to the
// account under recalculation. A transfer shows up twice, once as RoleCharged
// on the source account and once as RoleTarget on the receiving account. The
// Snapshot field carries the currently stored account-balance snapshot so
// Replay can report only the ones that actually changed.
type Entry struct {
	PaymentID uuid.UUID
	Date      time.Time
	CreatedAt time.Time
	Type      PaymentType
	Amount    decimal.Decimal
	Role      AccountRole
	Snapshot  decimal.Decimal
}

// SnapshotUpdate records a payment whose stored account-balance snapshot no
// longer matches the replayed running balance.
type SnapshotUpdate struct {
	PaymentID      uuid.UUID
	AccountBalance decimal.Decimal
}

// SortEntries orders entries the way the store does: date, then creation
// time, then id. Same-date payments keep their insertion order, so repeated
// recomputation of an already-consistent account is a no-op.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].PaymentID.String() < entries[j].PaymentID.String()
	})
}

// Replay walks the account's entries in order, starting from the account's
// starting balance, and returns the resulting current balance together with
// snapshot updates for every charged entry whose stored snapshot drifted.
//
// Snapshots belong to the charged side only: an incoming transfer moves the
// running balance but its snapshot is owned by the source account, so it is
// never rewritten here.
func Replay(starting decimal.Decimal, entries []Entry) (decimal.Decimal, []SnapshotUpdate) {
	balance := starting
	var updates []SnapshotUpdate

	for _, e := range entries {
		balance = balance.Add(e.Type.SignedEffect(e.Amount, e.Role))
		if e.Role != RoleCharged {
			continue
		}
		if !e.Snapshot.Equal(balance) {
			updates = append(updates, SnapshotUpdate{
				PaymentID:      e.PaymentID,
				AccountBalance: balance,
			})
		}
	}

	return balance, updates
}
