package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentType classifies how a payment moves money between accounts.
type PaymentType int8

const (
	Expense PaymentType = iota
	Income
	Transfer
)

// AccountRole is the role an account plays for a given payment.
type AccountRole int8

const (
	// RoleCharged is the account the payment is booked against.
	RoleCharged AccountRole = iota
	// RoleTarget is the receiving account of a transfer.
	RoleTarget
)

func (t PaymentType) String() string {
	switch t {
	case Expense:
		return "expense"
	case Income:
		return "income"
	case Transfer:
		return "transfer"
	}
	return fmt.Sprintf("PaymentType(%d)", int8(t))
}

// ParsePaymentType converts the API string form into a PaymentType.
func ParsePaymentType(s string) (PaymentType, error) {
	switch s {
	case "expense":
		return Expense, nil
	case "income":
		return Income, nil
	case "transfer":
		return Transfer, nil
	}
	return 0, fmt.Errorf("unknown payment type %q", s)
}

// SignedEffect returns the delta the payment applies to an account playing
// the given role. Amounts are stored non-negative; the sign comes from the
// type and role alone.
func (t PaymentType) SignedEffect(amount decimal.Decimal, role AccountRole) decimal.Decimal {
	switch role {
	case RoleCharged:
		switch t {
		case Expense, Transfer:
			return amount.Neg()
		case Income:
			return amount
		}
	case RoleTarget:
		if t == Transfer {
			return amount
		}
	}
	return decimal.Zero
}
