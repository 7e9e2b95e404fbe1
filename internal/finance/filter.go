package finance

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type accountMatch int8

const (
	matchAnyAccount accountMatch = iota
	matchNoAccount
	matchAccount
)

// AccountCriterion restricts transactions by their account association.
// The zero value matches every transaction.
type AccountCriterion struct {
	match accountMatch
	id    uuid.UUID
}

// AnyAccount matches every transaction.
func AnyAccount() AccountCriterion {
	return AccountCriterion{match: matchAnyAccount}
}

// NoAccount matches transactions without an account.
func NoAccount() AccountCriterion {
	return AccountCriterion{match: matchNoAccount}
}

// ForAccount matches transactions referencing the given account.
func ForAccount(id uuid.UUID) AccountCriterion {
	return AccountCriterion{match: matchAccount, id: id}
}

func (c AccountCriterion) IsAny() bool {
	return c.match == matchAnyAccount
}

func (c AccountCriterion) Matches(t Transaction) bool {
	switch c.match {
	case matchNoAccount:
		return !t.AccountID.Valid
	case matchAccount:
		return t.BelongsTo(c.id)
	default:
		return true
	}
}

// Criteria selects transactions. Every field is optional; set fields are
// combined with AND. A zero Month, an empty Type and an empty Recurrence
// mean "all".
type Criteria struct {
	Month      time.Time
	Type       TransactionType
	Recurrence Recurrence
	Account    AccountCriterion
}

// Matches reports whether t satisfies every set criterion. The month check is
// purely date based and ignores recurrence.
func (c Criteria) Matches(t Transaction) bool {
	if !c.Month.IsZero() && !sameMonth(t.Date, c.Month) {
		return false
	}
	if c.Type != "" && t.Type != c.Type {
		return false
	}
	if c.Recurrence != "" && t.Recurrence != c.Recurrence {
		return false
	}
	return c.Account.Matches(t)
}

// Filter returns the transactions matching criteria in their input order.
// The result is always a new slice.
func Filter(transactions []Transaction, criteria Criteria) []Transaction {
	result := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if criteria.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}

func sameMonth(date, month time.Time) bool {
	date = date.In(month.Location())
	return date.Year() == month.Year() && date.Month() == month.Month()
}
