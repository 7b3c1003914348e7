// Package report groups transaction records into alternate-calendar periods
// and computes per-period totals for the monthly report view.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"khata/internal/calendar"
	"khata/internal/core"
)

// Aggregator derives period views from a record sequence. All methods are
// pure reads and safe to call concurrently.
//
// The converter is optional: with a nil converter every output degrades to
// its empty form. Records whose conversion fails are silently excluded.
type Aggregator struct {
	conv calendar.Converter
}

func NewAggregator(conv calendar.Converter) *Aggregator {
	return &Aggregator{conv: conv}
}

// AvailableYears returns the distinct alternate-calendar years present in
// records, newest first. When no record converts, it falls back to the
// current alternate-calendar year so a period is always selectable.
func (a *Aggregator) AvailableYears(records []core.TransactionRecord) []int {
	if a.conv == nil {
		return nil
	}

	seen := make(map[int]struct{})
	for _, r := range records {
		d, err := a.conv.FromTime(r.Date)
		if err != nil {
			continue
		}
		seen[d.Year] = struct{}{}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	if len(years) == 0 {
		if today, err := a.conv.Today(); err == nil {
			years = append(years, today.Year)
		}
	}
	return years
}

// GroupByDay buckets the records falling into the given alternate-calendar
// year and month by day of month. Within a bucket records are ordered
// ascending by original timestamp; the alternate calendar has no sub-day
// resolution here.
func (a *Aggregator) GroupByDay(records []core.TransactionRecord, year, month int) map[int][]core.TransactionRecord {
	groups := make(map[int][]core.TransactionRecord)
	if a.conv == nil {
		return groups
	}

	for _, r := range records {
		d, err := a.conv.FromTime(r.Date)
		if err != nil {
			continue
		}
		if d.Year != year || d.Month != month {
			continue
		}
		groups[d.Day] = append(groups[d.Day], r)
	}

	for day := range groups {
		bucket := groups[day]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Date.Before(bucket[j].Date)
		})
	}
	return groups
}

// PeriodTotals sums income and expenses over the records of the given
// period. Unlike the P&L fold, loan-account records are included: the
// monthly report is a cash-flow view, and that asymmetry is intentional.
func (a *Aggregator) PeriodTotals(records []core.TransactionRecord, year, month int) (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for _, bucket := range a.GroupByDay(records, year, month) {
		for _, r := range bucket {
			if r.Type == core.TypeIncome {
				income = income.Add(r.Amount)
			} else {
				expenses = expenses.Add(r.Amount)
			}
		}
	}
	return income, expenses
}

// CurrentPeriod returns the current alternate-calendar year and month. The
// second return value is false when no converter is available or today is
// outside its range.
func (a *Aggregator) CurrentPeriod() (calendar.Date, bool) {
	if a.conv == nil {
		return calendar.Date{}, false
	}
	today, err := a.conv.Today()
	if err != nil {
		return calendar.Date{}, false
	}
	return today, true
}

// MonthNames returns the alternate-calendar month names, or nil without a
// converter.
func (a *Aggregator) MonthNames() []string {
	if a.conv == nil {
		return nil
	}
	return a.conv.MonthNames()
}
