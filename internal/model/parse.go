package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned (wrapped) by all date parsing functions on
// malformed or impossible input.
var ErrInvalidDate = errors.New("invalid date")

var usDateRegex = regexp.MustCompile(`^(\d{1,2})([-/])(\d{1,2})([-/])(\d{4})$`)
var timestampRegex = regexp.MustCompile(`^-?\d{5,}$`)

// ParseUSDate parses a date in MM-DD-YYYY or MM/DD/YYYY format. Leading
// zeros are optional, so M/D/YYYY is accepted as well; the two separators
// must match.
func ParseUSDate(s string) (Date, error) {
	parsed := usDateRegex.FindStringSubmatch(s)
	if parsed == nil || parsed[2] != parsed[4] {
		return Date{}, fmt.Errorf("%w: '%s' is not in MM-DD-YYYY or MM/DD/YYYY format", ErrInvalidDate, s)
	}
	month, _ := strconv.Atoi(parsed[1])
	day, _ := strconv.Atoi(parsed[3])
	year, _ := strconv.Atoi(parsed[5])
	result := Date{Year: year, Month: month, Day: day}
	if !result.Valid() {
		return Date{}, fmt.Errorf("%w: day %s (from string '%s') not valid", ErrInvalidDate, result.ToString(), s)
	}
	return result, nil
}

// FromTimestamp returns the date of the given Unix millisecond timestamp in
// the given location.
func FromTimestamp(millis int64, loc *time.Location) Date {
	return FromTime(time.UnixMilli(millis).In(loc))
}

// ParseDateInput accepts any of the date inputs a caller may hand in:
//   - MM-DD-YYYY, MM/DD/YYYY (with optional leading zeros)
//   - YYYY-MM-DD
//   - a Unix timestamp in milliseconds
//
// Timestamps are interpreted in the given location.
func ParseDateInput(s string, loc *time.Location) (Date, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Date{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	case timestampRegex.MatchString(s):
		millis, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Date{}, fmt.Errorf("%w: timestamp '%s' (%s)", ErrInvalidDate, s, err.Error())
		}
		return FromTimestamp(millis, loc), nil
	case isoDateRegex.MatchString(s):
		return FromString(s)
	default:
		return ParseUSDate(s)
	}
}
