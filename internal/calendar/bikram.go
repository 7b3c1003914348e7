package calendar

import (
	"fmt"
	"time"
)

// firstYear is the first Bikram Sambat year covered by the month-length
// table below. Its first day corresponds to refDate.
const firstYear = 2070

// refDate is the Gregorian date of 1 Baishakh, B.S. 2070.
var refDate = time.Date(2013, time.April, 14, 0, 0, 0, 0, time.UTC)

// monthLengths carries the number of days in each Bikram Sambat month,
// one row per year starting at firstYear. The calendar is observational,
// so month lengths are tabulated rather than computed.
var monthLengths = [][12]int{
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2070
	{31, 31, 32, 31, 31, 31, 29, 30, 29, 30, 29, 31}, // 2071
	{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2072
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2073
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2074
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2075
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2076
	{31, 32, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2077
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2078
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2079
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2080
	{31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2081
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2082
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2083
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2084
	{31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30}, // 2085
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2086
	{31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}, // 2087
	{30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30}, // 2088
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2089
}

var months = []string{
	"Baishakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

// BikramSambat converts Gregorian timestamps to Bikram Sambat dates using a
// tabulated month-length calendar.
type BikramSambat struct {
	clock func() time.Time
}

func NewBikramSambat() *BikramSambat {
	return &BikramSambat{clock: time.Now}
}

// FromTime implements Converter. Timestamps outside the tabulated year range
// yield an error; the conversion considers only the civil date of t, in t's
// own location.
func (b *BikramSambat) FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	civil := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	days := int(civil.Sub(refDate).Hours() / 24)
	if days < 0 {
		return Date{}, fmt.Errorf("date %s before supported range (B.S. %d)", civil.Format("2006-01-02"), firstYear)
	}

	for yi, lengths := range monthLengths {
		for mi, length := range lengths {
			if days < length {
				return Date{Year: firstYear + yi, Month: mi + 1, Day: days + 1}, nil
			}
			days -= length
		}
	}
	return Date{}, fmt.Errorf("date %s after supported range (B.S. %d)", civil.Format("2006-01-02"), firstYear+len(monthLengths)-1)
}

func (b *BikramSambat) MonthNames() []string {
	out := make([]string, len(months))
	copy(out, months)
	return out
}

func (b *BikramSambat) Today() (Date, error) {
	return b.FromTime(b.clock())
}
