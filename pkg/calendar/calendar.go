// Package calendar converts osquery calendarTime strings such as
// "Mon Jan 02 15:04:05 2024 UTC" into ISO-8601 local date-times.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	ISO    = "2006-01-02T15:04:05"
	Suffix = " UTC"
)

var (
	weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	months   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid calendar time %q: %s", e.Value, e.Reason)
}

// Convert parses s and formats it with the ISO layout.
func Convert(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}

	return t.Format(ISO), nil
}

// Parse reads "<weekday> <month> <day> <HH:MM:SS> <year>" with an optional
// trailing " UTC". The weekday must be a known abbreviation but is not
// checked against the date.
func Parse(s string) (time.Time, error) {
	fail := func(format string, args ...interface{}) (time.Time, error) {
		return time.Time{}, &ParseError{Value: s, Reason: fmt.Sprintf(format, args...)}
	}

	parts := strings.Fields(strings.TrimSuffix(s, Suffix))

	if len(parts) != 5 {
		return fail("expected 5 fields, got %d", len(parts))
	}

	if lookup(weekdays, parts[0]) < 0 {
		return fail("unknown weekday %q", parts[0])
	}

	m := lookup(months, parts[1])
	if m < 0 {
		return fail("unknown month %q", parts[1])
	}

	year, ok := number(parts[4], 4, 4)
	if !ok || year < 1 {
		return fail("bad year %q", parts[4])
	}

	month := time.Month(m + 1)

	day, ok := number(parts[2], 1, 2)
	if !ok || day < 1 || day > daysIn(month, year) {
		return fail("bad day %q", parts[2])
	}

	clock := strings.Split(parts[3], ":")
	if len(clock) != 3 {
		return fail("bad time %q", parts[3])
	}

	hour, ok := number(clock[0], 1, 2)
	if !ok || hour > 23 {
		return fail("bad hour %q", clock[0])
	}

	min, ok := number(clock[1], 2, 2)
	if !ok || min > 59 {
		return fail("bad minute %q", clock[1])
	}

	sec, ok := number(clock[2], 2, 2)
	if !ok || sec > 59 {
		return fail("bad second %q", clock[2])
	}

	return time.Date(year, month, day, hour, min, sec, 0, time.UTC), nil
}

func lookup(table []string, s string) int {
	for i, v := range table {
		if v == s {
			return i
		}
	}

	return -1
}

// number accepts only ascii digits, between min and max of them
func number(s string, min, max int) (int, bool) {
	if len(s) < min || len(s) > max {
		return 0, false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
