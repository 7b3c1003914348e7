package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBikramSambatNewYearAnchor(t *testing.T) {
	bs := NewBikramSambat()

	d, err := bs.FromTime(time.Date(2013, time.April, 14, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2070, Month: 1, Day: 1}, d)
}

func TestBikramSambatWalksForward(t *testing.T) {
	bs := NewBikramSambat()

	// 30 days after the anchor is still inside Baishakh 2070 (31 days).
	d, err := bs.FromTime(time.Date(2013, time.April, 14, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2070, Month: 1, Day: 31}, d)

	// One more day rolls over into Jestha.
	d, err = bs.FromTime(time.Date(2013, time.April, 14, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 31))
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2070, Month: 2, Day: 1}, d)
}

func TestBikramSambatUsesCivilDateOfLocation(t *testing.T) {
	bs := NewBikramSambat()

	// Late evening in Kathmandu is already the next civil day relative to UTC;
	// conversion must follow the timestamp's own location.
	npt := time.FixedZone("NPT", 5*3600+45*60)
	d, err := bs.FromTime(time.Date(2013, time.April, 15, 0, 10, 0, 0, npt))
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2070, Month: 1, Day: 2}, d)
}

func TestBikramSambatOutOfRange(t *testing.T) {
	bs := NewBikramSambat()

	_, err := bs.FromTime(time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)

	_, err = bs.FromTime(time.Date(2090, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestBikramSambatMonthNames(t *testing.T) {
	bs := NewBikramSambat()

	names := bs.MonthNames()
	require.Len(t, names, 12)
	assert.Equal(t, "Baishakh", names[0])
	assert.Equal(t, "Chaitra", names[11])

	// Callers get their own copy.
	names[0] = "mutated"
	assert.Equal(t, "Baishakh", bs.MonthNames()[0])
}

func TestBikramSambatToday(t *testing.T) {
	bs := NewBikramSambat()
	bs.clock = func() time.Time {
		return time.Date(2013, time.April, 14, 12, 0, 0, 0, time.UTC)
	}

	d, err := bs.Today()
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2070, Month: 1, Day: 1}, d)
}

func TestMonthLengthTableSane(t *testing.T) {
	for yi, lengths := range monthLengths {
		total := 0
		for _, l := range lengths {
			assert.GreaterOrEqual(t, l, 29)
			assert.LessOrEqual(t, l, 32)
			total += l
		}
		assert.Contains(t, []int{364, 365, 366}, total, "year %d", firstYear+yi)
	}
}
