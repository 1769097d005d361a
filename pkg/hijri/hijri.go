// Package hijri converts between the Gregorian calendar and the tabular
// (arithmetical) Islamic calendar.
//
// The civil epoch is used: 1 Muharram 1 AH is Julian 16 July 622, JDN 1948440.
// Leap years follow the 2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29 pattern of the
// 30-year cycle. Results are deterministic and need no sighting data.
package hijri

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errorvalues "github.com/limbo/ramadan/internal/error_values"
)

const (
	MinYear = 1
	MaxYear = 3000

	Ramadan = 9

	epochJDN     = 1948440
	unixEpochJDN = 2440588
	secondsInDay = 86400
)

var (
	minJDN = toJDN(MinYear, 1, 1)
	maxJDN = toJDN(MaxYear, 12, 1) + monthLength(MaxYear, 12) - 1
)

// Date is a Hijri calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Validate checks that d is a real date inside the supported range.
func (d Date) Validate() error {
	if d.Year < MinYear || d.Year > MaxYear {
		return fmt.Errorf("%w: year %d not in [%d, %d]", errorvalues.ErrCalendarRange, d.Year, MinYear, MaxYear)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", errorvalues.ErrCalendarRange, d.Month)
	}
	if d.Day < 1 || d.Day > monthLength(d.Year, d.Month) {
		return fmt.Errorf("%w: day %d of %04d-%02d", errorvalues.ErrCalendarRange, d.Day, d.Year, d.Month)
	}
	return nil
}

// Parse reads a date in YYYY-MM-DD form. Components are unsigned decimal
// numbers and nothing may follow the day.
func Parse(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: malformed hijri date %q", errorvalues.ErrCalendarRange, s)
	}
	var fields [3]int
	for i, part := range parts {
		n, err := parseUnsigned(part)
		if err != nil {
			return Date{}, fmt.Errorf("%w: malformed hijri date %q", errorvalues.ErrCalendarRange, s)
		}
		fields[i] = n
	}
	d := Date{Year: fields[0], Month: fields[1], Day: fields[2]}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

func parseUnsigned(s string) (int, error) {
	if s == "" || len(s) > 4 {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// ToHijri converts the calendar date of t (read in t's own location) to Hijri.
func ToHijri(t time.Time) (Date, error) {
	jdn := gregorianJDN(t)
	if jdn < minJDN || jdn > maxJDN {
		return Date{}, fmt.Errorf("%w: %s", errorvalues.ErrCalendarRange, t.Format(time.DateOnly))
	}
	return fromJDN(jdn), nil
}

// ToGregorian converts a Hijri triple to a Gregorian date at UTC midnight.
func ToGregorian(year, month, day int) (time.Time, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	return jdnToTime(toJDN(year, month, day)), nil
}

// MustGregorian is ToGregorian for dates already known to be valid.
func (d Date) MustGregorian() time.Time {
	t, err := ToGregorian(d.Year, d.Month, d.Day)
	if err != nil {
		panic(err)
	}
	return t
}

// IsLeapYear reports whether the Hijri year has 355 days.
func IsLeapYear(year int) bool {
	return (14+11*year)%30 < 11
}

// MonthLength returns the number of days in a Hijri month.
func MonthLength(year, month int) (int, error) {
	if err := (Date{Year: year, Month: month, Day: 1}).Validate(); err != nil {
		return 0, err
	}
	return monthLength(year, month), nil
}

// MonthBounds returns the Gregorian first and last day of a Hijri month.
func MonthBounds(year, month int) (time.Time, time.Time, error) {
	n, err := MonthLength(year, month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := toJDN(year, month, 1)
	return jdnToTime(start), jdnToTime(start + n - 1), nil
}

// RamadanBounds returns the Gregorian first and last day of Ramadan in year.
func RamadanBounds(year int) (time.Time, time.Time, error) {
	return MonthBounds(year, Ramadan)
}

// AddDays shifts d by n days (n may be negative).
func AddDays(d Date, n int) (Date, error) {
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	jdn := toJDN(d.Year, d.Month, d.Day) + n
	if jdn < minJDN || jdn > maxJDN {
		return Date{}, fmt.Errorf("%w: %s %+d days", errorvalues.ErrCalendarRange, d, n)
	}
	return fromJDN(jdn), nil
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Date) int {
	return toJDN(b.Year, b.Month, b.Day) - toJDN(a.Year, a.Month, a.Day)
}

// EndOfMonth returns the last day of d's month.
func EndOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: monthLength(d.Year, d.Month)}
}

func monthLength(year, month int) int {
	if month == 12 && IsLeapYear(year) {
		return 30
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

func toJDN(year, month, day int) int {
	return day +
		(59*(month-1)+1)/2 +
		(year-1)*354 +
		(3+11*year)/30 +
		epochJDN - 1
}

func fromJDN(jdn int) Date {
	year := (30*(jdn-epochJDN) + 10646) / 10631
	month := ceilDiv(2*(jdn-29-toJDN(year, 1, 1)), 59) + 1
	month = min(max(month, 1), 12)
	day := jdn - toJDN(year, month, 1) + 1
	return Date{Year: year, Month: month, Day: day}
}

func gregorianJDN(t time.Time) int {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return floorDiv(midnight.Unix(), secondsInDay) + unixEpochJDN
}

func jdnToTime(jdn int) time.Time {
	return time.Unix(int64(jdn-unixEpochJDN)*secondsInDay, 0).UTC()
}

func floorDiv(a, b int64) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return int(q)
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
