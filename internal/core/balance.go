package core

import "github.com/shopspring/decimal"

// Summary holds per-account balances and the operational profit-and-loss
// totals for a record sequence.
type Summary struct {
	BankBalance   decimal.Decimal `json:"bankBalance"`
	CashBalance   decimal.Decimal `json:"cashBalance"`
	LoanBalance   decimal.Decimal `json:"loanBalance"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

// NetProfit is derived, never stored.
func (s Summary) NetProfit() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpenses)
}

// Summarize folds the full record sequence into balances and P&L totals in a
// single pass. Addition is commutative, so the result does not depend on the
// order of the input.
//
// Loan-account records are excluded from the P&L totals: taking or repaying a
// loan is a balance-sheet movement, not an operating income or expense. They
// still move the loan balance, where taking a loan increases the liability
// and repaying decreases it.
func Summarize(records []TransactionRecord) Summary {
	s := Summary{
		BankBalance:   decimal.Zero,
		CashBalance:   decimal.Zero,
		LoanBalance:   decimal.Zero,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, r := range records {
		if r.Account != AccountLoan {
			if r.Type == TypeIncome {
				s.TotalIncome = s.TotalIncome.Add(r.Amount)
			} else {
				s.TotalExpenses = s.TotalExpenses.Add(r.Amount)
			}
		}

		delta := r.Amount
		if r.Type == TypeExpense {
			delta = delta.Neg()
		}
		switch r.Account {
		case AccountBank:
			s.BankBalance = s.BankBalance.Add(delta)
		case AccountCash:
			s.CashBalance = s.CashBalance.Add(delta)
		case AccountLoan:
			s.LoanBalance = s.LoanBalance.Add(delta)
		}
	}

	return s
}
