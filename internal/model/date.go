package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar date without a time of day or a location.
//
// Month is 1-based (January is 1).
type Date struct {
	Year  int
	Month int
	Day   int
}

// FromTime returns the date of the given time in the time's location.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// AddDays returns the date the given number of days after the receiver.
// Negative values go backward.
func (d Date) AddDays(n int) Date {
	return FromTime(time.Date(d.Year, time.Month(d.Month), d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) Prev() Date {
	return d.AddDays(-1)
}

func (d Date) Next() Date {
	return d.AddDays(1)
}

func (d Date) Backward(by int) Date {
	return d.AddDays(-by)
}

func (d Date) Forward(by int) Date {
	return d.AddDays(by)
}

func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Format formats the date according to the given layout (see time.Format).
func (d Date) Format(layout string) string {
	return d.utc().Format(layout)
}

func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	if d.Day < 1 || d.Day > d.GetLastOfMonth().Day {
		return false
	}
	return true
}

var isoDateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// FromString parses a date in YYYY-MM-DD format.
func FromString(s string) (Date, error) {
	parsed := isoDateRegex.FindStringSubmatch(s)
	if parsed == nil {
		return Date{}, fmt.Errorf("%w: '%s' is not in YYYY-MM-DD format", ErrInvalidDate, s)
	}
	year, _ := strconv.Atoi(parsed[1])
	month, _ := strconv.Atoi(parsed[2])
	day, _ := strconv.Atoi(parsed[3])
	result := Date{Year: year, Month: month, Day: day}
	if !result.Valid() {
		return Date{}, fmt.Errorf("%w: day %s (from string '%s') not valid", ErrInvalidDate, result.ToString(), s)
	}
	return result, nil
}

func lastDaysOfMonth() map[int]int {
	return map[int]int{
		1:  31,
		2:  28,
		3:  31,
		4:  30,
		5:  31,
		6:  30,
		7:  31,
		8:  31,
		9:  30,
		10: 31,
		11: 30,
		12: 31,
	}
}

func (d Date) getFirstOfMonth() Date {
	return Date{
		Year:  d.Year,
		Month: d.Month,
		Day:   1,
	}
}

// Compare returns -1 if a is before b, 1 if a is after b and 0 if they are the
// same date.
func (a Date) Compare(b Date) int {
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(a.Month - b.Month)
	default:
		return sign(a.Day - b.Day)
	}
}

// Whether a date A is after a date B.
func (a Date) IsAfter(b Date) bool {
	return a.Compare(b) > 0
}

// Whether a date A is before a date B.
func (a Date) IsBefore(b Date) bool {
	return a.Compare(b) < 0
}

// DaysUntil returns the number of days from a date A until a date B is
// reached (e.g. from 2021-12-14 until 2021-12-19 -> 5 days).
// If b is before a, the result is negative.
func (a Date) DaysUntil(b Date) int {
	return int(b.utc().Sub(a.utc()).Hours() / 24)
}

// DistanceTo returns the absolute number of days between a and b.
func (a Date) DistanceTo(b Date) int {
	n := a.DaysUntil(b)
	if n < 0 {
		return -n
	}
	return n
}

// GetLastOfMonth returns the last date of the month of the receiver.
func (d Date) GetLastOfMonth() Date {
	var lastDay int

	switch {
	case d.Month == 2 && d.isLeapYear():
		lastDay = 29
	default:
		lastDay = lastDaysOfMonth()[d.Month]
	}

	return Date{Year: d.Year, Month: d.Month, Day: lastDay}
}

func (d Date) isLeapYear() bool {
	return d.Year%4 == 0 && (!(d.Year%100 == 0) || d.Year%400 == 0)
}

func (d Date) MonthBounds() (first Date, last Date) {
	return d.getFirstOfMonth(), d.GetLastOfMonth()
}

// YearMonth returns the month the receiver is in.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

func (d Date) ToWeekday() time.Weekday {
	return d.utc().Weekday()
}

// ToGotime returns the start of the date in the given location.
func (d Date) ToGotime(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func (d Date) utc() time.Time {
	return d.ToGotime(time.UTC)
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	default:
		return 0
	}
}
