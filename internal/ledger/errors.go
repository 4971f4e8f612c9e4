package ledger

import "errors"

// Domain errors surfaced by the write path. Handlers map these onto HTTP
// statuses; everything else bubbles up as an internal error.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrNonPositiveAmount      = errors.New("payment amount must be positive")
	ErrTargetAccountRequired  = errors.New("transfer requires a target account")
	ErrTargetAccountForbidden = errors.New("target account is only valid on transfers")
	ErrSameAccountTransfer    = errors.New("transfer target must differ from charged account")

	ErrInvalidEndDate = errors.New("recurrence end date must be after start date")
)
