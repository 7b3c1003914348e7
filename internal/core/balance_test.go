package core

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rec(desc string, amount int64, typ TransactionType, acct Account) TransactionRecord {
	return TransactionRecord{
		ID:          desc,
		Description: desc,
		Amount:      decimal.NewFromInt(amount),
		Type:        typ,
		Account:     acct,
		Date:        time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.BankBalance.IsZero())
	assert.True(t, s.CashBalance.IsZero())
	assert.True(t, s.LoanBalance.IsZero())
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
	assert.True(t, s.NetProfit().IsZero())
}

func TestSummarizeSalaryToBank(t *testing.T) {
	s := Summarize([]TransactionRecord{
		rec("Salary", 50000, TypeIncome, AccountBank),
	})

	assert.Equal(t, "50000", s.BankBalance.String())
	assert.Equal(t, "50000", s.TotalIncome.String())
	assert.True(t, s.LoanBalance.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
}

func TestSummarizeLoanExcludedFromPL(t *testing.T) {
	s := Summarize([]TransactionRecord{
		rec("Loan", 20000, TypeIncome, AccountLoan),
		rec("Rent", 5000, TypeExpense, AccountBank),
	})

	assert.Equal(t, "20000", s.LoanBalance.String(), "taking a loan increases the liability")
	assert.Equal(t, "-5000", s.BankBalance.String())
	assert.True(t, s.TotalIncome.IsZero(), "loan withdrawal is not operating income")
	assert.Equal(t, "5000", s.TotalExpenses.String())
	assert.Equal(t, "-5000", s.NetProfit().String())
}

func TestSummarizeLoanRepayment(t *testing.T) {
	s := Summarize([]TransactionRecord{
		rec("Loan", 20000, TypeIncome, AccountLoan),
		rec("Repay loan", 8000, TypeExpense, AccountLoan),
	})

	assert.Equal(t, "12000", s.LoanBalance.String())
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
}

func TestSummarizeOrderInvariant(t *testing.T) {
	records := []TransactionRecord{
		rec("Salary", 50000, TypeIncome, AccountBank),
		rec("Rent", 5000, TypeExpense, AccountBank),
		rec("Loan", 20000, TypeIncome, AccountLoan),
		rec("Groceries", 1200, TypeExpense, AccountCash),
		rec("Sale", 3000, TypeIncome, AccountCash),
		rec("Repay loan", 4000, TypeExpense, AccountLoan),
	}
	want := Summarize(records)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]TransactionRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := Summarize(shuffled)

		assert.True(t, want.BankBalance.Equal(got.BankBalance))
		assert.True(t, want.CashBalance.Equal(got.CashBalance))
		assert.True(t, want.LoanBalance.Equal(got.LoanBalance))
		assert.True(t, want.TotalIncome.Equal(got.TotalIncome))
		assert.True(t, want.TotalExpenses.Equal(got.TotalExpenses))
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	records := []TransactionRecord{
		rec("Salary", 50000, TypeIncome, AccountBank),
		rec("Rent", 5000, TypeExpense, AccountBank),
	}

	first := Summarize(records)
	second := Summarize(records)

	assert.Equal(t, first, second)
}

// Excluding a loan record changes the P&L by exactly its amount when the
// record is misclassified into an operating account, and never moves the
// bank or cash balances.
func TestSummarizeLoanExclusionDelta(t *testing.T) {
	base := []TransactionRecord{
		rec("Salary", 50000, TypeIncome, AccountBank),
		rec("Groceries", 1200, TypeExpense, AccountCash),
	}
	loan := rec("Loan", 20000, TypeIncome, AccountLoan)

	withLoan := Summarize(append(append([]TransactionRecord{}, base...), loan))
	without := Summarize(base)

	assert.True(t, withLoan.TotalIncome.Equal(without.TotalIncome))
	assert.True(t, withLoan.TotalExpenses.Equal(without.TotalExpenses))
	assert.True(t, withLoan.BankBalance.Equal(without.BankBalance))
	assert.True(t, withLoan.CashBalance.Equal(without.CashBalance))
	assert.Equal(t, "20000", withLoan.LoanBalance.Sub(without.LoanBalance).String())

	// Same record against a bank account would have moved the P&L.
	asBank := loan
	asBank.Account = AccountBank
	withBank := Summarize(append(append([]TransactionRecord{}, base...), asBank))
	assert.Equal(t, "20000", withBank.TotalIncome.Sub(without.TotalIncome).String())
}
