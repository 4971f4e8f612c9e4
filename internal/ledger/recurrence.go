package ledger

import (
	"fmt"
	"time"
)

// RecurrenceInterval is how often a recurring payment template materializes
// a new payment.
type RecurrenceInterval int8

const (
	Daily RecurrenceInterval = iota
	Weekly
	Biweekly
	Monthly
	Quarterly
	Yearly
)

func (r RecurrenceInterval) String() string {
	switch r {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Biweekly:
		return "biweekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	}
	return fmt.Sprintf("RecurrenceInterval(%d)", int8(r))
}

// ParseRecurrenceInterval converts the API string form into an interval.
func ParseRecurrenceInterval(s string) (RecurrenceInterval, error) {
	switch s {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "biweekly":
		return Biweekly, nil
	case "monthly":
		return Monthly, nil
	case "quarterly":
		return Quarterly, nil
	case "yearly":
		return Yearly, nil
	}
	return 0, fmt.Errorf("unknown recurrence interval %q", s)
}

// ValidateRecurrence checks the template dates before anything is persisted.
// An endless template ignores the end date entirely; otherwise the end date
// must fall strictly after the start date.
func ValidateRecurrence(start, end time.Time, isEndless bool) error {
	if isEndless {
		return nil
	}
	if !end.After(start) {
		return ErrInvalidEndDate
	}
	return nil
}
