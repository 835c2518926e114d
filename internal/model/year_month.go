package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// YearMonth identifies a single month of a year. Month is 1-based.
type YearMonth struct {
	Year  int
	Month int
}

// AddMonths returns the month n months after the receiver (negative n goes
// backward), rolling over year boundaries.
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year*12 + (ym.Month - 1) + n
	year, month := idx/12, idx%12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: month + 1}
}

func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

func (ym YearMonth) Prev() YearMonth {
	return ym.AddMonths(-1)
}

// MonthsUntil returns the number of months from a until b (negative if b is
// before a).
func (a YearMonth) MonthsUntil(b YearMonth) int {
	return (b.Year*12 + b.Month) - (a.Year*12 + a.Month)
}

func (a YearMonth) IsBefore(b YearMonth) bool {
	return a.MonthsUntil(b) > 0
}

func (a YearMonth) IsAfter(b YearMonth) bool {
	return a.MonthsUntil(b) < 0
}

// First returns the first date of the month.
func (ym YearMonth) First() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: 1}
}

// Contains reports whether the date lies within the month.
func (ym YearMonth) Contains(d Date) bool {
	return d.Year == ym.Year && d.Month == ym.Month
}

func (ym YearMonth) Valid() bool {
	return ym.Month >= 1 && ym.Month <= 12
}

func (ym YearMonth) ToString() string {
	return fmt.Sprintf("%02d/%04d", ym.Month, ym.Year)
}

var yearMonthRegex = regexp.MustCompile(`^\s*(\d{1,2})\s*/\s*(\d{4})\s*$`)

// ParseYearMonth parses a month in MM/YYYY format (e.g. "10/2014" for October
// 2014).
func ParseYearMonth(s string) (YearMonth, error) {
	parsed := yearMonthRegex.FindStringSubmatch(s)
	if parsed == nil {
		return YearMonth{}, fmt.Errorf("%w: '%s' is not in MM/YYYY format", ErrInvalidDate, s)
	}
	month, _ := strconv.Atoi(parsed[1])
	year, _ := strconv.Atoi(parsed[2])
	result := YearMonth{Year: year, Month: month}
	if !result.Valid() {
		return YearMonth{}, fmt.Errorf("%w: month %d (from string '%s') not valid", ErrInvalidDate, month, s)
	}
	return result, nil
}
