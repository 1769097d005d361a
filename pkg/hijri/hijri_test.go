package hijri_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/hijri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestToHijri(t *testing.T) {
	testCases := []struct {
		Desc      string
		Gregorian time.Time
		Result    hijri.Date
	}{
		{
			Desc:      "first day of ramadan 1445",
			Gregorian: date(2024, time.March, 11),
			Result:    hijri.Date{Year: 1445, Month: 9, Day: 1},
		},
		{
			Desc:      "last day of ramadan 1445",
			Gregorian: date(2024, time.April, 9),
			Result:    hijri.Date{Year: 1445, Month: 9, Day: 30},
		},
		{
			Desc:      "eid al-fitr 1445",
			Gregorian: date(2024, time.April, 10),
			Result:    hijri.Date{Year: 1445, Month: 10, Day: 1},
		},
		{
			Desc:      "mid ramadan",
			Gregorian: date(2024, time.March, 25),
			Result:    hijri.Date{Year: 1445, Month: 9, Day: 15},
		},
		{
			Desc:      "epoch",
			Gregorian: date(622, time.July, 19),
			Result:    hijri.Date{Year: 1, Month: 1, Day: 1},
		},
		{
			Desc:      "non-utc location uses its own calendar date",
			Gregorian: time.Date(2024, time.March, 11, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			Result:    hijri.Date{Year: 1445, Month: 9, Day: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			result, err := hijri.ToHijri(tc.Gregorian)
			require.NoError(t, err)
			assert.Equal(t, tc.Result, result)
		})
	}
}

func TestToGregorianErrors(t *testing.T) {
	testCases := []struct {
		Desc  string
		Input hijri.Date
	}{
		{Desc: "year below range", Input: hijri.Date{Year: 0, Month: 1, Day: 1}},
		{Desc: "year above range", Input: hijri.Date{Year: hijri.MaxYear + 1, Month: 1, Day: 1}},
		{Desc: "month 13", Input: hijri.Date{Year: 1445, Month: 13, Day: 1}},
		{Desc: "day 30 of even month", Input: hijri.Date{Year: 1445, Month: 8, Day: 30}},
		{Desc: "day zero", Input: hijri.Date{Year: 1445, Month: 9, Day: 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := hijri.ToGregorian(tc.Input.Year, tc.Input.Month, tc.Input.Day)
			assert.ErrorIs(t, err, errorvalues.ErrCalendarRange)
		})
	}
}

func TestToHijriOutOfRange(t *testing.T) {
	_, err := hijri.ToHijri(date(622, time.July, 18))
	assert.ErrorIs(t, err, errorvalues.ErrCalendarRange)
	_, err = hijri.ToHijri(date(9000, time.January, 1))
	assert.ErrorIs(t, err, errorvalues.ErrCalendarRange)
}

func TestGregorianRoundTrip(t *testing.T) {
	from := date(1900, time.January, 1)
	to := date(2100, time.December, 31)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		h, err := hijri.ToHijri(d)
		require.NoError(t, err)
		back, err := hijri.ToGregorian(h.Year, h.Month, h.Day)
		require.NoError(t, err)
		if !back.Equal(d) {
			t.Fatalf("round trip mismatch: %s -> %s -> %s", d.Format(time.DateOnly), h, back.Format(time.DateOnly))
		}
	}
}

func TestHijriRoundTrip(t *testing.T) {
	for year := 1300; year <= 1600; year++ {
		for month := 1; month <= 12; month++ {
			n, err := hijri.MonthLength(year, month)
			require.NoError(t, err)
			for day := 1; day <= n; day++ {
				g, err := hijri.ToGregorian(year, month, day)
				require.NoError(t, err)
				h, err := hijri.ToHijri(g)
				require.NoError(t, err)
				if h != (hijri.Date{Year: year, Month: month, Day: day}) {
					t.Fatalf("round trip mismatch: %04d-%02d-%02d -> %s -> %s", year, month, day, g.Format(time.DateOnly), h)
				}
			}
		}
	}
}

func TestRangeBoundaries(t *testing.T) {
	first, err := hijri.ToGregorian(hijri.MinYear, 1, 1)
	require.NoError(t, err)
	h, err := hijri.ToHijri(first)
	require.NoError(t, err)
	assert.Equal(t, hijri.Date{Year: 1, Month: 1, Day: 1}, h)

	lastDay, err := hijri.MonthLength(hijri.MaxYear, 12)
	require.NoError(t, err)
	last, err := hijri.ToGregorian(hijri.MaxYear, 12, lastDay)
	require.NoError(t, err)
	h, err = hijri.ToHijri(last)
	require.NoError(t, err)
	assert.Equal(t, hijri.Date{Year: hijri.MaxYear, Month: 12, Day: lastDay}, h)

	_, err = hijri.ToHijri(last.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, errorvalues.ErrCalendarRange)
}

func TestLeapYearsAndMonthLength(t *testing.T) {
	leap := map[int]bool{2: true, 5: true, 7: true, 10: true, 13: true, 16: true, 18: true, 21: true, 24: true, 26: true, 29: true}
	for y := 1; y <= 30; y++ {
		assert.Equal(t, leap[y], hijri.IsLeapYear(y), "year %d", y)
		n, err := hijri.MonthLength(y, 12)
		require.NoError(t, err)
		if leap[y] {
			assert.Equal(t, 30, n)
		} else {
			assert.Equal(t, 29, n)
		}
	}
	n, err := hijri.MonthLength(1445, 9)
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}

func TestRamadanBounds(t *testing.T) {
	start, end, err := hijri.RamadanBounds(1445)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 11), start)
	assert.Equal(t, date(2024, time.April, 9), end)
}

func TestAddDaysAndCompare(t *testing.T) {
	d := hijri.Date{Year: 1445, Month: 9, Day: 28}
	next, err := hijri.AddDays(d, 5)
	require.NoError(t, err)
	assert.Equal(t, hijri.Date{Year: 1445, Month: 10, Day: 3}, next)
	assert.True(t, d.Before(next))
	assert.True(t, next.After(d))
	assert.Equal(t, 0, d.Compare(d))
	assert.Equal(t, 5, hijri.DaysBetween(d, next))

	prev, err := hijri.AddDays(next, -5)
	require.NoError(t, err)
	assert.Equal(t, d, prev)

	_, err = hijri.AddDays(hijri.Date{Year: 1, Month: 1, Day: 1}, -1)
	assert.ErrorIs(t, err, errorvalues.ErrCalendarRange)
}

func TestParse(t *testing.T) {
	d, err := hijri.Parse("1445-09-15")
	require.NoError(t, err)
	assert.Equal(t, hijri.Date{Year: 1445, Month: 9, Day: 15}, d)
	assert.Equal(t, "1445-09-15", d.String())

	d, err = hijri.Parse("1445-9-1")
	require.NoError(t, err)
	assert.Equal(t, hijri.Date{Year: 1445, Month: 9, Day: 1}, d)

	for _, malformed := range []string{
		"not a date",
		"1445-02-30",
		"1445-09-01abc",
		"1445-09-01-",
		"1445-09",
		"+1445-09-01",
		"1445--9-01",
		"1445-+9-01",
		" 1445-09-01",
		"1445-09-01 ",
		"1445-09-",
		"01445-09-01",
	} {
		_, err = hijri.Parse(malformed)
		assert.ErrorIs(t, err, errorvalues.ErrCalendarRange, malformed)
	}
}
