package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

const (
	AccountBank Account = "bank"
	AccountCash Account = "cash"
	AccountLoan Account = "loan"
)

type (
	// TransactionType classifies a record as money coming in or going out.
	TransactionType string

	// Account is one of the three balance buckets tracked independently.
	Account string

	// TransactionRecord is a single bookkeeping event. Records are never
	// mutated in place: an update replaces the whole value under the same ID.
	TransactionRecord struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Type        TransactionType `json:"type"`
		Account     Account         `json:"account"`
		Date        time.Time       `json:"date"`
	}
)

var (
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidType      = errors.New("type must be income or expense")
	ErrInvalidAccount   = errors.New("account must be bank, cash or loan")
	ErrMissingDate      = errors.New("date is required")
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (a Account) Valid() bool {
	return a == AccountBank || a == AccountCash || a == AccountLoan
}

func (r TransactionRecord) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	if !r.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !r.Type.Valid() {
		return ErrInvalidType
	}
	if !r.Account.Valid() {
		return ErrInvalidAccount
	}
	if r.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// MergeCalendarDay moves orig to a different calendar day while keeping the
// original time-of-day and zone offset. Updates may only change the day
// component of a record's date; the instant's clock stays untouched.
func MergeCalendarDay(orig time.Time, year int, month time.Month, day int) time.Time {
	hour, min, sec := orig.Clock()
	return time.Date(year, month, day, hour, min, sec, orig.Nanosecond(), orig.Location())
}
