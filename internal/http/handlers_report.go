package http

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"khata/internal/core"
)

type reportDayGroup struct {
	Day          int                      `json:"day"`
	Transactions []core.TransactionRecord `json:"transactions"`
}

type reportView struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	MonthNames     []string         `json:"monthNames"`
	AvailableYears []int            `json:"availableYears"`
	TotalIncome    decimal.Decimal  `json:"totalIncome"`
	TotalExpenses  decimal.Decimal  `json:"totalExpenses"`
	Net            decimal.Decimal  `json:"net"`
	Days           []reportDayGroup `json:"days"`
}

// handleReport serves the monthly report for an alternate-calendar period.
// Without explicit year and month parameters the current period is used.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := s.reportPeriod(r)
	if !ok {
		// No converter coverage for today and no explicit period requested:
		// serve the empty report shape rather than failing the view.
		writeJSON(w, http.StatusOK, emptyReportView())
		return
	}

	key := fmt.Sprintf("%d-%d", year, month)
	if view, hit := s.reportCache.Get(key); hit {
		writeJSON(w, http.StatusOK, view)
		return
	}

	records := s.svc.List(r.Context())
	view := s.buildReportView(records, year, month)
	s.reportCache.Set(key, view)
	writeJSON(w, http.StatusOK, view)
}

// reportPeriod resolves the requested period. Either parameter may be given
// alone; the missing one defaults from the current period.
func (s *Server) reportPeriod(r *http.Request) (year, month int, ok bool) {
	q := r.URL.Query()
	year, yearErr := strconv.Atoi(q.Get("year"))
	month, monthErr := strconv.Atoi(q.Get("month"))
	haveYear := yearErr == nil
	haveMonth := monthErr == nil && month >= 1 && month <= 12

	if haveYear && haveMonth {
		return year, month, true
	}

	today, ok := s.reports.CurrentPeriod()
	if !ok {
		return 0, 0, false
	}
	if !haveYear {
		year = today.Year
	}
	if !haveMonth {
		month = today.Month
	}
	return year, month, true
}

func (s *Server) buildReportView(records []core.TransactionRecord, year, month int) reportView {
	groups := s.reports.GroupByDay(records, year, month)

	days := make([]reportDayGroup, 0, len(groups))
	for day, bucket := range groups {
		days = append(days, reportDayGroup{Day: day, Transactions: bucket})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	income, expenses := s.reports.PeriodTotals(records, year, month)

	monthNames := s.reports.MonthNames()
	if monthNames == nil {
		monthNames = []string{}
	}
	years := s.reports.AvailableYears(records)
	if years == nil {
		years = []int{}
	}

	return reportView{
		Year:           year,
		Month:          month,
		MonthNames:     monthNames,
		AvailableYears: years,
		TotalIncome:    income,
		TotalExpenses:  expenses,
		Net:            income.Sub(expenses),
		Days:           days,
	}
}

func emptyReportView() reportView {
	return reportView{
		MonthNames:     []string{},
		AvailableYears: []int{},
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
		Net:            decimal.Zero,
		Days:           []reportDayGroup{},
	}
}
