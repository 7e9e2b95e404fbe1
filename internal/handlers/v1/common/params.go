package common

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/finance"
)

// NoAccount is the accountId value selecting transactions without an account.
const NoAccount = "none"

// MonthLocation is the time zone calendar months are resolved in.
var MonthLocation = time.Local

// ParseMonth parses a "YYYY-MM" value. An empty value yields the zero time.
func ParseMonth(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	month, err := time.ParseInLocation(finance.MonthLabelLayout, value, MonthLocation)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+name+", expected YYYY-MM", err)
	}
	return month, nil
}

// ParseAccountCriterion maps the accountId parameter: empty matches every
// transaction, "none" those without an account, a UUID one account.
func ParseAccountCriterion(value string) (finance.AccountCriterion, error) {
	switch value {
	case "":
		return finance.AnyAccount(), nil
	case NoAccount:
		return finance.NoAccount(), nil
	}
	id, err := uuid.FromString(value)
	if err != nil {
		return finance.AccountCriterion{}, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}
	return finance.ForAccount(id), nil
}

// ParseAccountRef maps an accountId body field: empty or "none" means no
// account, otherwise a UUID.
func ParseAccountRef(value string) (uuid.NullUUID, error) {
	if value == "" || value == NoAccount {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.NullUUID{}, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func ParseID(value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

func ParseDecimal(name, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return amount, nil
}

// FormatMoney renders an amount with at least two decimal places and never
// drops stored precision.
func FormatMoney(amount decimal.Decimal) string {
	places := 2
	if _, fraction, ok := strings.Cut(amount.String(), "."); ok && len(fraction) > places {
		places = len(fraction)
	}
	return amount.StringFixed(int32(places))
}

// FormatAccountRef renders a nullable account reference, empty when unset.
func FormatAccountRef(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}

// ParseCriteria builds filter criteria from the list query values.
func ParseCriteria(month, txType, recurrence, accountID string) (finance.Criteria, error) {
	parsedMonth, err := ParseMonth("month", month)
	if err != nil {
		return finance.Criteria{}, err
	}

	criteria := finance.Criteria{
		Month:      parsedMonth,
		Type:       finance.TransactionType(txType),
		Recurrence: finance.Recurrence(recurrence),
	}
	if criteria.Type != "" && !criteria.Type.Valid() {
		return finance.Criteria{}, huma.NewError(http.StatusBadRequest, "type must be expense or income")
	}
	if criteria.Recurrence != "" && !criteria.Recurrence.Valid() {
		return finance.Criteria{}, huma.NewError(http.StatusBadRequest, "recurrence must be one_off or monthly")
	}

	criteria.Account, err = ParseAccountCriterion(accountID)
	if err != nil {
		return finance.Criteria{}, err
	}
	return criteria, nil
}
